package retirement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseScenario() ScenarioInput {
	return ScenarioInput{
		CurrentAge:              62,
		RetirementAge:           67,
		CurrentSavings:          500000,
		MonthlyExpenses:         5000,
		SocialSecurityAge:       67,
		EstimatedSocialSecurity: 2500,
	}
}

func TestAdjustmentFactor(t *testing.T) {
	cases := map[int]float64{
		62: 0.70,
		63: 0.68,
		64: 0.76,
		66: 0.92,
		67: 1.00,
		68: 1.08,
		69: 1.16,
		70: 1.24,
	}
	for age, want := range cases {
		assert.InDelta(t, want, AdjustmentFactor(age), 1e-9, "age %d", age)
	}
	// anchors are exact
	assert.Equal(t, 0.70, AdjustmentFactor(62))
	assert.Equal(t, 1.0, AdjustmentFactor(67))
	assert.Equal(t, 1.24, AdjustmentFactor(70))
}

func TestProjectWorkedScenario(t *testing.T) {
	res := Project(baseScenario())

	assert.Equal(t, 5, res.YearsToRetirement)
	assert.Equal(t, 23, res.YearsInRetirement)
	assert.Equal(t, 90, res.TerminalAge)
	assert.InDelta(t, 1380000, res.TotalRetirementNeeds, 1e-6)
	assert.Equal(t, 1.0, res.AdjustmentFactor)
	assert.InDelta(t, 2500, res.AdjustedBenefit, 1e-9)
	assert.InDelta(t, 690000, res.SocialSecurityIncome, 1e-6)
	assert.InDelta(t, 669112.79, res.ProjectedBalance, 0.01)
	assert.InDelta(t, 26764.51, res.AnnualWithdrawal, 0.01)
	assert.InDelta(t, 1305583.77, res.TotalProjectedIncome, 0.01)
	assert.InDelta(t, 74416.23, res.ProjectedShortfall, 0.01)
	assert.Equal(t, 95, res.ReadinessScore)
	assert.True(t, res.ScoreApplicable)
}

func TestProjectUsesLifeExpectancy(t *testing.T) {
	in := baseScenario()
	in.LifeExpectancy = 85

	res := Project(in)

	assert.Equal(t, 85, res.TerminalAge)
	assert.Equal(t, 18, res.YearsInRetirement)
	assert.InDelta(t, 5000*12*18, res.TotalRetirementNeeds, 1e-6)
	assert.InDelta(t, 2500*12*18, res.SocialSecurityIncome, 1e-6)
}

func TestProjectIsIdempotent(t *testing.T) {
	in := baseScenario()
	in.Spouse = &SpouseInput{Age: 60, SocialSecurityAge: 64, SocialSecurity: 1200}

	first := Project(in)
	second := Project(in)

	assert.Equal(t, first, second)
}

func TestProjectScoreClamped(t *testing.T) {
	rich := baseScenario()
	rich.CurrentSavings = 50_000_000
	res := Project(rich)
	assert.Equal(t, 100, res.ReadinessScore)
	assert.Less(t, res.ProjectedShortfall, 0.0)

	poor := baseScenario()
	poor.CurrentSavings = 0
	poor.EstimatedSocialSecurity = 0
	poor.MonthlyExpenses = 10000
	res = Project(poor)
	assert.Equal(t, 0, res.ReadinessScore)
	assert.InDelta(t, res.TotalRetirementNeeds, res.ProjectedShortfall, 1e-6)
}

func TestProjectZeroNeedsIsNotApplicable(t *testing.T) {
	in := baseScenario()
	in.MonthlyExpenses = 0

	res := Project(in)

	assert.False(t, res.ScoreApplicable)
	assert.Equal(t, 0, res.ReadinessScore)
	assert.Less(t, res.ProjectedShortfall, 0.0)

	in = baseScenario()
	in.LifeExpectancy = in.RetirementAge // no years in retirement
	res = Project(in)
	assert.False(t, res.ScoreApplicable)
	assert.Equal(t, 0, res.YearsInRetirement)
}

func TestProjectSpouseAddsSocialSecurityOnly(t *testing.T) {
	in := baseScenario()
	without := Project(in)

	in.Spouse = &SpouseInput{Age: 60, RetirementAge: 65, SocialSecurityAge: 62, SocialSecurity: 1000}
	with := Project(in)

	assert.InDelta(t, 700, with.SpouseAdjustedBenefit, 1e-9)
	assert.InDelta(t, 700*12*28, with.SpouseSocialSecurityIncome, 1e-6)
	assert.Equal(t, without.ProjectedBalance, with.ProjectedBalance)
	assert.InDelta(t, without.TotalProjectedIncome+with.SpouseSocialSecurityIncome, with.TotalProjectedIncome, 1e-6)
}

func TestProjectSpouseWithoutBenefitIgnored(t *testing.T) {
	in := baseScenario()
	in.Spouse = &SpouseInput{Age: 60, SocialSecurityAge: 67}

	res := Project(in)

	assert.Zero(t, res.SpouseSocialSecurityIncome)
	assert.Equal(t, Project(baseScenario()).TotalProjectedIncome, res.TotalProjectedIncome)
}

func TestGrowthSchedule(t *testing.T) {
	schedule := GrowthSchedule(baseScenario())

	require.Len(t, schedule, 6)
	assert.Equal(t, YearBalance{Year: 0, Age: 62, Balance: 500000}, schedule[0])
	assert.Equal(t, 67, schedule[5].Age)
	assert.InDelta(t, Project(baseScenario()).ProjectedBalance, schedule[5].Balance, 1e-6)
	for i := 1; i < len(schedule); i++ {
		assert.Greater(t, schedule[i].Balance, schedule[i-1].Balance)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, baseScenario().Validate())

	in := baseScenario()
	in.RetirementAge = 60
	in.SocialSecurityAge = 61
	in.CurrentSavings = -1
	err := in.Validate()
	require.Error(t, err)

	verrs, ok := err.(ValidationErrors)
	require.True(t, ok)
	fields := map[string]string{}
	for _, fe := range verrs {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "must be greater than currentAge", fields["retirementAge"])
	assert.Equal(t, "must be at least 62", fields["socialSecurityAge"])
	assert.Equal(t, "must be at least 0", fields["currentSavings"])
}

func TestValidateMoneyCeiling(t *testing.T) {
	in := ScenarioInput{
		CurrentAge:              40,
		RetirementAge:           62,
		SocialSecurityAge:       62,
		EstimatedSocialSecurity: 1e308,
		CurrentSavings:          MaxAmount + 1,
		MonthlyExpenses:         9e18,
		Spouse:                  &SpouseInput{SocialSecurityAge: 67, SocialSecurity: 2e12},
	}

	err := in.Validate()

	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "estimatedSocialSecurity must be at most 1000000000000")
	assert.Contains(t, msg, "currentSavings must be at most 1000000000000")
	assert.Contains(t, msg, "monthlyExpenses must be at most 1000000000000")
	assert.Contains(t, msg, "spouse.socialSecurity must be at most 1000000000000")

	roth := RothInput{CurrentAge: 50, TraditionalBalance: 1e13, ConversionAmount: 1e13}
	err = roth.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "traditionalIraBalance must be at most 1000000000000")
	assert.Contains(t, err.Error(), "conversionAmount must be at most 1000000000000")
}

func TestProjectAtCeilingStaysFinite(t *testing.T) {
	in := ScenarioInput{
		CurrentAge:              18,
		RetirementAge:           67,
		LifeExpectancy:          120,
		CurrentSavings:          MaxAmount,
		MonthlyExpenses:         0,
		SocialSecurityAge:       70,
		EstimatedSocialSecurity: MaxAmount,
		Spouse:                  &SpouseInput{SocialSecurityAge: 70, SocialSecurity: MaxAmount},
	}
	require.NoError(t, in.Validate())

	res := Project(in)

	assert.False(t, math.IsInf(res.TotalProjectedIncome, 0))
	assert.Less(t, res.ProjectedShortfall, 0.0)
	assert.Less(t, WholeDollars(res.ProjectedShortfall), int64(0))
	assert.NotPanics(t, func() { Recommend(in, res) })
}

func TestValidateSpouseClaimAge(t *testing.T) {
	in := baseScenario()
	in.Spouse = &SpouseInput{SocialSecurityAge: 71, SocialSecurity: 1000}

	err := in.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "spouse.socialSecurityAge must be at most 70")
}

func TestValidateLifeExpectancy(t *testing.T) {
	in := baseScenario()
	in.LifeExpectancy = 67

	err := in.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lifeExpectancy must be greater than retirementAge")

	in = baseScenario()
	in.RetirementAge = 92 // past the default terminal age
	err = in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lifeExpectancy must be greater than retirementAge")
}
