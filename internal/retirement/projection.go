package retirement

import "math"

const (
	AssumedReturn      = 0.06 // annual portfolio growth before retirement
	SafeWithdrawalRate = 0.04 // share of the retirement balance drawn each year
)

// ScenarioResult carries the score, the shortfall and every intermediate value
// the recommendations and the presentation layers need.
type ScenarioResult struct {
	YearsToRetirement          int     `json:"yearsToRetirement"`
	YearsInRetirement          int     `json:"yearsInRetirement"`
	TerminalAge                int     `json:"terminalAge"`
	TotalRetirementNeeds       float64 `json:"totalRetirementNeeds"`
	AdjustmentFactor           float64 `json:"adjustmentFactor"`
	AdjustedBenefit            float64 `json:"adjustedBenefit"`
	SocialSecurityIncome       float64 `json:"socialSecurityIncome"`
	SpouseAdjustedBenefit      float64 `json:"spouseAdjustedBenefit,omitempty"`
	SpouseSocialSecurityIncome float64 `json:"spouseSocialSecurityIncome,omitempty"`
	ProjectedBalance           float64 `json:"projectedBalance"`
	AnnualWithdrawal           float64 `json:"annualWithdrawal"`
	TotalProjectedIncome       float64 `json:"totalProjectedIncome"`
	ProjectedShortfall         float64 `json:"projectedShortfall"` // positive means a deficit
	ReadinessScore             int     `json:"readinessScore"`
	ScoreApplicable            bool    `json:"scoreApplicable"` // false when there are no retirement needs to cover
}

// TerminalAge is the age the projection runs to.
func (in ScenarioInput) TerminalAge() int {
	if in.LifeExpectancy > 0 {
		return in.LifeExpectancy
	}
	return DefaultTerminalAge
}

// Project computes the retirement outlook for in.
//
// A spouse contributes Social Security only; spouse savings are assumed to be
// folded into CurrentSavings by the caller.
func Project(in ScenarioInput) ScenarioResult {
	terminal := in.TerminalAge()
	res := ScenarioResult{
		YearsToRetirement: in.RetirementAge - in.CurrentAge,
		YearsInRetirement: terminal - in.RetirementAge,
		TerminalAge:       terminal,
		AdjustmentFactor:  AdjustmentFactor(in.SocialSecurityAge),
	}

	res.TotalRetirementNeeds = in.MonthlyExpenses * 12 * float64(res.YearsInRetirement)
	res.AdjustedBenefit, res.SocialSecurityIncome = lifetimeBenefit(in.EstimatedSocialSecurity, in.SocialSecurityAge, terminal)
	if in.Spouse != nil && in.Spouse.SocialSecurity > 0 {
		res.SpouseAdjustedBenefit, res.SpouseSocialSecurityIncome = lifetimeBenefit(in.Spouse.SocialSecurity, in.Spouse.SocialSecurityAge, terminal)
	}

	res.ProjectedBalance = FutureValue(in.CurrentSavings, res.YearsToRetirement)
	res.AnnualWithdrawal = res.ProjectedBalance * SafeWithdrawalRate

	res.TotalProjectedIncome = res.AnnualWithdrawal*float64(res.YearsInRetirement) +
		res.SocialSecurityIncome + res.SpouseSocialSecurityIncome
	res.ProjectedShortfall = res.TotalRetirementNeeds - res.TotalProjectedIncome
	res.ReadinessScore, res.ScoreApplicable = readiness(res.TotalProjectedIncome, res.TotalRetirementNeeds)
	return res
}

// FutureValue grows principal at AssumedReturn for years whole years.
// Non-positive horizons return the principal unchanged.
func FutureValue(principal float64, years int) float64 {
	if years <= 0 {
		return principal
	}
	return principal * math.Pow(1+AssumedReturn, float64(years))
}

// readiness is income as a percentage of needs, rounded and clamped to 0..100.
func readiness(income, needs float64) (int, bool) {
	if needs <= 0 {
		return 0, false
	}
	score := math.Round(income / needs * 100)
	switch {
	case score < 0:
		score = 0
	case score > 100:
		score = 100
	}
	return int(score), true
}

// YearBalance is one row of a growth schedule.
type YearBalance struct {
	Year    int     `json:"year"` // years from today
	Age     int     `json:"age"`
	Balance float64 `json:"balance"`
}

// GrowthSchedule lists the projected balance for every age from CurrentAge up
// to and including RetirementAge.
func GrowthSchedule(in ScenarioInput) []YearBalance {
	years := in.RetirementAge - in.CurrentAge
	if years < 0 {
		years = 0
	}
	out := make([]YearBalance, 0, years+1)
	for y := 0; y <= years; y++ {
		out = append(out, YearBalance{
			Year:    y,
			Age:     in.CurrentAge + y,
			Balance: FutureValue(in.CurrentSavings, y),
		})
	}
	return out
}
