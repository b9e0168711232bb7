// Package report renders a scenario into an Excel workbook.
package report

import (
	"fmt"
	"io"

	"retirement_planner/internal/domain"
	"retirement_planner/internal/retirement"

	"github.com/xuri/excelize/v2"
)

// Sheet names, in workbook order
const (
	SummarySheet         = "Summary"
	ProjectionSheet      = "Projection"
	RecommendationsSheet = "Recommendations"
)

const currencyFormat = `"$"#,##0;-"$"#,##0`

// Workbook builds the export for sc. The caller must Close the result.
func Workbook(sc *domain.Scenario) (*excelize.File, error) {
	in := sc.ProjectionInput()
	res := retirement.Project(in)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{ProjectionSheet, RecommendationsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	steps := []func(*excelize.File, styles) error{
		func(f *excelize.File, s styles) error { return writeSummary(f, s, sc, res) },
		func(f *excelize.File, s styles) error { return writeProjection(f, s, in) },
		func(f *excelize.File, s styles) error {
			return writeRecommendations(f, s, retirement.Recommend(in, res))
		},
	}
	for _, step := range steps {
		if err := step(f, st); err != nil {
			f.Close()
			return nil, fmt.Errorf("build workbook: %w", err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Write renders the workbook for sc straight to w.
func Write(w io.Writer, sc *domain.Scenario) error {
	f, err := Workbook(sc)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// Filename is the attachment name used for sc.
func Filename(sc *domain.Scenario) string {
	return fmt.Sprintf("scenario-%d.xlsx", sc.ID)
}

type styles struct {
	header   int
	currency int
}

func newStyles(f *excelize.File) (styles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return styles{}, err
	}
	format := currencyFormat
	currency, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return styles{}, err
	}
	return styles{header: header, currency: currency}, nil
}

type row struct {
	label string
	value any
	money bool
}

func writeSummary(f *excelize.File, s styles, sc *domain.Scenario, res retirement.ScenarioResult) error {
	rows := []row{
		{"Scenario", sc.Name, false},
		{"Current Age", sc.CurrentAge, false},
		{"Retirement Age", sc.RetirementAge, false},
		{"Life Expectancy", res.TerminalAge, false},
		{"Current Savings", sc.CurrentSavings, true},
		{"Monthly Expenses", sc.MonthlyExpenses, true},
		{"Social Security Age", sc.SocialSecurityAge, false},
		{"Estimated Social Security (monthly)", sc.EstimatedSocialSecurity, true},
	}
	if sc.HasSpouse && sc.SpouseSocialSecurity != nil {
		rows = append(rows, row{"Spouse Social Security (monthly)", *sc.SpouseSocialSecurity, true})
	}
	rows = append(rows,
		row{"Years to Retirement", res.YearsToRetirement, false},
		row{"Years in Retirement", res.YearsInRetirement, false},
		row{"Total Retirement Needs", retirement.WholeDollars(res.TotalRetirementNeeds), true},
		row{"Social Security Income", retirement.WholeDollars(res.SocialSecurityIncome + res.SpouseSocialSecurityIncome), true},
		row{"Projected Balance at Retirement", retirement.WholeDollars(res.ProjectedBalance), true},
		row{"Annual Withdrawal (4%)", retirement.WholeDollars(res.AnnualWithdrawal), true},
		row{"Total Projected Income", retirement.WholeDollars(res.TotalProjectedIncome), true},
		row{"Projected Shortfall", retirement.WholeDollars(res.ProjectedShortfall), true},
		row{"Readiness Score", res.ReadinessScore, false},
	)

	if err := f.SetSheetRow(SummarySheet, "A1", &[]any{"Item", "Value"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "B1", s.header); err != nil {
		return err
	}
	for i, r := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SummarySheet, cell, &[]any{r.label, r.value}); err != nil {
			return err
		}
		if r.money {
			value := fmt.Sprintf("B%d", i+2)
			if err := f.SetCellStyle(SummarySheet, value, value, s.currency); err != nil {
				return err
			}
		}
	}
	return f.SetColWidth(SummarySheet, "A", "A", 38)
}

func writeProjection(f *excelize.File, s styles, in retirement.ScenarioInput) error {
	if err := f.SetSheetRow(ProjectionSheet, "A1", &[]any{"Year", "Age", "Balance"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(ProjectionSheet, "A1", "C1", s.header); err != nil {
		return err
	}
	schedule := retirement.GrowthSchedule(in)
	for i, yb := range schedule {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(ProjectionSheet, cell, &[]any{yb.Year, yb.Age, retirement.WholeDollars(yb.Balance)}); err != nil {
			return err
		}
	}
	if len(schedule) > 0 {
		last := fmt.Sprintf("C%d", len(schedule)+1)
		if err := f.SetCellStyle(ProjectionSheet, "C2", last, s.currency); err != nil {
			return err
		}
	}
	return f.SetColWidth(ProjectionSheet, "C", "C", 16)
}

func writeRecommendations(f *excelize.File, s styles, recs []retirement.Recommendation) error {
	if err := f.SetSheetRow(RecommendationsSheet, "A1", &[]any{"Priority", "Title", "Description", "Impact"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(RecommendationsSheet, "A1", "D1", s.header); err != nil {
		return err
	}
	for i, r := range recs {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(RecommendationsSheet, cell, &[]any{string(r.Priority), r.Title, r.Description, r.Impact}); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(RecommendationsSheet, "B", "B", 44); err != nil {
		return err
	}
	return f.SetColWidth(RecommendationsSheet, "C", "C", 80)
}
