package retirement

import (
	"fmt"
	"strconv"
)

// RothResult compares the tax paid on a conversion today with the tax the
// same amount would cost at the retirement bracket.
type RothResult struct {
	TaxesPaidNow    int64  `json:"taxesPaidNow"`
	TaxesSavedLater int64  `json:"taxesSavedLater"`
	NetBenefit      int64  `json:"netBenefit"` // negative is a net cost
	Favorable       bool   `json:"favorable"`
	Recommendation  string `json:"recommendation"`
}

// AnalyzeRoth applies both brackets to the conversion amount. It ignores the
// time value of money and spreading the conversion over several years.
func AnalyzeRoth(in RothInput) RothResult {
	paid := WholeDollars(in.ConversionAmount * in.CurrentTaxBracket / 100)
	saved := WholeDollars(in.ConversionAmount * in.RetirementTaxBracket / 100)
	res := RothResult{
		TaxesPaidNow:    paid,
		TaxesSavedLater: saved,
		NetBenefit:      saved - paid,
	}
	res.Favorable = res.NetBenefit > 0

	if res.Favorable {
		res.Recommendation = fmt.Sprintf("Converting %s to a Roth IRA could save you about %s in taxes over your lifetime. "+
			"It makes sense because your current bracket (%s%%) is below your expected retirement bracket (%s%%).",
			FormatDollars(in.ConversionAmount), FormatDollars(float64(res.NetBenefit)),
			percent(in.CurrentTaxBracket), percent(in.RetirementTaxBracket))
		return res
	}
	res.Recommendation = fmt.Sprintf("Converting to a Roth IRA may not be optimal at this time. "+
		"You would pay %s in taxes now to save %s later, a net cost of %s. Consider waiting until your tax bracket is lower.",
		FormatDollars(float64(paid)), FormatDollars(float64(saved)), FormatDollars(float64(-res.NetBenefit)))
	return res
}

func percent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
