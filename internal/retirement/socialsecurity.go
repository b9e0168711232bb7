package retirement

const (
	EarliestClaimAge   = 62
	FullRetirementAge  = 67
	LatestClaimAge     = 70
	DefaultTerminalAge = 90

	earlyClaimFactor   = 0.70
	delayedClaimFactor = 1.24
	factorPerYear      = 0.08
)

// AdjustmentFactor returns the multiplier applied to the full-retirement-age
// benefit when claiming at age. The anchors 62, 67 and 70 are fixed; every
// other age moves 8% per year from 67. This is deliberately the simplified
// rule, so 63 yields 0.68, below the age-62 anchor.
func AdjustmentFactor(age int) float64 {
	switch age {
	case EarliestClaimAge:
		return earlyClaimFactor
	case FullRetirementAge:
		return 1.0
	case LatestClaimAge:
		return delayedClaimFactor
	default:
		return 1.0 + factorPerYear*float64(age-FullRetirementAge)
	}
}

// lifetimeBenefit is the adjusted monthly benefit and its total paid from
// claimAge through terminalAge.
func lifetimeBenefit(monthly float64, claimAge, terminalAge int) (adjusted, total float64) {
	adjusted = monthly * AdjustmentFactor(claimAge)
	years := terminalAge - claimAge
	if years < 0 {
		years = 0
	}
	return adjusted, adjusted * 12 * float64(years)
}
