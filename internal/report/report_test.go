package report

import (
	"bytes"
	"testing"

	"retirement_planner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func scenario() *domain.Scenario {
	return &domain.Scenario{
		ID:                      12,
		Name:                    "Base plan",
		CurrentAge:              62,
		RetirementAge:           67,
		LifeExpectancy:          90,
		CurrentSavings:          500000,
		MonthlyExpenses:         5000,
		SocialSecurityAge:       67,
		EstimatedSocialSecurity: 2500,
	}
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, scenario()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, ProjectionSheet, RecommendationsSheet}, f.GetSheetList())

	summary, err := f.GetRows(SummarySheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	values := map[string]string{}
	for _, r := range summary[1:] {
		values[r[0]] = r[1]
	}
	assert.Equal(t, "Base plan", values["Scenario"])
	assert.Equal(t, "669113", values["Projected Balance at Retirement"])
	assert.Equal(t, "74416", values["Projected Shortfall"])
	assert.Equal(t, "95", values["Readiness Score"])

	projection, err := f.GetRows(ProjectionSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, projection, 7) // header + years 0..5
	assert.Equal(t, []string{"0", "62", "500000"}, projection[1])
	assert.Equal(t, "67", projection[6][1])

	recs, err := f.GetRows(RecommendationsSheet)
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, "Consider Delaying Social Security to Age 70", recs[1][1])
}

func TestWorkbookAlreadyRetired(t *testing.T) {
	sc := scenario()
	sc.CurrentAge = 70
	sc.RetirementAge = 67

	f, err := Workbook(sc)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ProjectionSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + the current year
	assert.Equal(t, "70", rows[1][1])
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "scenario-12.xlsx", Filename(scenario()))
}
