package retirement

import (
	"fmt"
	"math"
)

// Priority ranks a recommendation for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

const (
	MedicareAge              = 65
	bridgeCoveragePerMonth   = 1000.0 // budgeted pre-Medicare premium
	rothConversionMinHorizon = 5
)

// Recommendation is one rule-generated suggestion.
type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
	Priority    Priority `json:"priority"`
}

// Recommend evaluates the fixed rule list against a projection. The order of
// the returned slice is the display order.
func Recommend(in ScenarioInput, res ScenarioResult) []Recommendation {
	var recs []Recommendation
	terminal := res.TerminalAge

	// Claiming age
	if in.SocialSecurityAge < FullRetirementAge {
		gain := (in.EstimatedSocialSecurity - res.AdjustedBenefit) * 12 * float64(yearsFrom(FullRetirementAge, terminal))
		recs = append(recs, Recommendation{
			Title: "Delay Social Security to Age 67",
			Description: fmt.Sprintf("Claiming at %d cuts your benefit by %d%%. Waiting until full retirement age (67) raises the monthly check from %s to %s.",
				in.SocialSecurityAge, int(math.Round((1-res.AdjustmentFactor)*100)), FormatDollars(res.AdjustedBenefit), FormatDollars(in.EstimatedSocialSecurity)),
			Impact:   "Potential lifetime gain: " + FormatDollars(gain),
			Priority: PriorityHigh,
		})
	} else if in.SocialSecurityAge < LatestClaimAge {
		delayed := in.EstimatedSocialSecurity * delayedClaimFactor
		gain := (delayed - res.AdjustedBenefit) * 12 * float64(yearsFrom(LatestClaimAge, terminal))
		recs = append(recs, Recommendation{
			Title: "Consider Delaying Social Security to Age 70",
			Description: fmt.Sprintf("Every year past 67 adds 8%% to your benefit. Claiming at 70 would pay %s a month.",
				FormatDollars(delayed)),
			Impact:   "Potential lifetime gain: " + FormatDollars(gain),
			Priority: PriorityMedium,
		})
	}

	// Savings gap
	if res.ProjectedShortfall > 0 {
		impact := "Additional savings needed: " + FormatDollars(res.ProjectedShortfall)
		if res.YearsToRetirement > 0 {
			monthly := res.ProjectedShortfall / float64(res.YearsToRetirement) / 12
			impact = "Save an additional " + FormatDollars(monthly) + "/month"
		}
		recs = append(recs, Recommendation{
			Title:       "Increase Monthly Savings",
			Description: "Your current trajectory leaves a retirement income shortfall. Raising your monthly savings now closes the gap while growth can still compound.",
			Impact:      impact,
			Priority:    PriorityHigh,
		})
	}

	recs = append(recs, Recommendation{
		Title:       "Implement Tax-Efficient Withdrawal Strategy",
		Description: "Draw from taxable accounts first, then tax-deferred accounts (401k/IRA), and tax-free Roth money last to keep lifetime taxes down.",
		Impact:      "Potential tax savings: $50,000 - $150,000 over retirement",
		Priority:    PriorityHigh,
	})

	if res.YearsToRetirement > rothConversionMinHorizon {
		recs = append(recs, Recommendation{
			Title:       "Consider Roth IRA Conversions",
			Description: "Convert part of a traditional IRA to a Roth IRA in lower-income years before retirement to shrink future RMDs and build tax-free income.",
			Impact:      "Reduce future tax burden and RMD requirements",
			Priority:    PriorityMedium,
		})
	}

	if in.RetirementAge < MedicareAge {
		years := MedicareAge - in.RetirementAge
		recs = append(recs, Recommendation{
			Title:       "Plan for Healthcare Costs Before Medicare",
			Description: fmt.Sprintf("You will need %d years of private health coverage before Medicare starts at 65. Budget $800-$1,500 a month.", years),
			Impact:      "Estimated cost: " + FormatDollars(float64(years)*12*bridgeCoveragePerMonth),
			Priority:    PriorityHigh,
		})
	}

	return recs
}

func yearsFrom(age, terminal int) int {
	if terminal < age {
		return 0
	}
	return terminal - age
}
