package cli

import (
	"fmt"
	"io"
	"os"

	"retirement_planner/internal/domain"
	"retirement_planner/internal/report"
	"retirement_planner/internal/retirement"

	"github.com/spf13/cobra"
)

type projectFlags struct {
	name   string
	xlsx   string
	in     retirement.ScenarioInput
	spouse retirement.SpouseInput
}

func newProjectCmd(opts *options) *cobra.Command {
	f := &projectFlags{}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project retirement readiness for one scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := f.in
			// A spouse is modeled once any spouse Social Security flag is given
			if cmd.Flags().Changed("spouse-ss-age") || cmd.Flags().Changed("spouse-ss-benefit") {
				sp := f.spouse
				in.Spouse = &sp
			}
			if err := in.Validate(); err != nil {
				return err
			}
			res := retirement.Project(in)
			recs := retirement.Recommend(in, res)

			if f.xlsx != "" {
				if err := writeWorkbook(f.xlsx, f.name, in); err != nil {
					return fmt.Errorf("write %s: %w", f.xlsx, err)
				}
			}
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, map[string]any{"result": res, "recommendations": recs})
			}
			printProjection(out, res, recs)
			if f.xlsx != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, successStyle.Render("✓ ")+"Workbook written to "+f.xlsx)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", "Scenario", "Scenario name used in the workbook")
	fl.StringVar(&f.xlsx, "xlsx", "", "Also write an Excel workbook to this path")
	fl.IntVar(&f.in.CurrentAge, "current-age", 0, "Current age")
	fl.IntVar(&f.in.RetirementAge, "retirement-age", 67, "Planned retirement age")
	fl.IntVar(&f.in.LifeExpectancy, "life-expectancy", 0, "Age the plan runs to (default 90)")
	fl.Float64Var(&f.in.CurrentSavings, "savings", 0, "Current retirement savings")
	fl.Float64Var(&f.in.MonthlyExpenses, "monthly-expenses", 0, "Expected monthly spending in retirement")
	fl.IntVar(&f.in.SocialSecurityAge, "ss-age", retirement.FullRetirementAge, "Social Security claiming age (62-70)")
	fl.Float64Var(&f.in.EstimatedSocialSecurity, "ss-benefit", 0, "Monthly Social Security benefit at 67")
	fl.IntVar(&f.spouse.Age, "spouse-age", 0, "Spouse current age")
	fl.IntVar(&f.spouse.RetirementAge, "spouse-retirement-age", 0, "Spouse retirement age")
	fl.IntVar(&f.spouse.SocialSecurityAge, "spouse-ss-age", retirement.FullRetirementAge, "Spouse Social Security claiming age (62-70)")
	fl.Float64Var(&f.spouse.SocialSecurity, "spouse-ss-benefit", 0, "Spouse monthly Social Security benefit at 67")
	_ = cmd.MarkFlagRequired("current-age")
	return cmd
}

func printProjection(w io.Writer, res retirement.ScenarioResult, recs []retirement.Recommendation) {
	section(w, "Retirement Readiness")
	if res.ScoreApplicable {
		field(w, "Readiness score", scoreStyle(res.ReadinessScore).Render(fmt.Sprintf("%d/100", res.ReadinessScore)))
	} else {
		field(w, "Readiness score", mutedStyle.Render("n/a (no retirement expenses)"))
	}
	field(w, "Years to retirement", fmt.Sprint(res.YearsToRetirement))
	field(w, "Years in retirement", fmt.Sprint(res.YearsInRetirement))
	field(w, "Projected balance at retirement", retirement.FormatDollars(res.ProjectedBalance))
	field(w, "Annual withdrawal (4%)", retirement.FormatDollars(res.AnnualWithdrawal))
	field(w, "Social Security (monthly, adjusted)", retirement.FormatDollars(res.AdjustedBenefit))
	if res.SpouseSocialSecurityIncome > 0 {
		field(w, "Spouse Social Security (monthly)", retirement.FormatDollars(res.SpouseAdjustedBenefit))
	}
	field(w, "Total retirement needs", retirement.FormatDollars(res.TotalRetirementNeeds))
	field(w, "Total projected income", retirement.FormatDollars(res.TotalProjectedIncome))
	if res.ProjectedShortfall > 0 {
		field(w, "Projected shortfall", errorStyle.Render(retirement.FormatDollars(res.ProjectedShortfall)))
	} else {
		field(w, "Projected surplus", successStyle.Render(retirement.FormatDollars(-res.ProjectedShortfall)))
	}

	section(w, "Recommendations")
	for _, r := range recs {
		fmt.Fprintln(w, priorityTag(r.Priority)+" "+r.Title)
		fmt.Fprintln(w, "  "+r.Description)
		fmt.Fprintln(w, "  "+mutedStyle.Render(r.Impact))
	}
}

func writeWorkbook(path, name string, in retirement.ScenarioInput) error {
	sc := &domain.Scenario{
		Name:                    name,
		CurrentAge:              in.CurrentAge,
		RetirementAge:           in.RetirementAge,
		LifeExpectancy:          in.TerminalAge(),
		CurrentSavings:          retirement.WholeDollars(in.CurrentSavings),
		MonthlyExpenses:         retirement.WholeDollars(in.MonthlyExpenses),
		SocialSecurityAge:       in.SocialSecurityAge,
		EstimatedSocialSecurity: retirement.WholeDollars(in.EstimatedSocialSecurity),
	}
	if sp := in.Spouse; sp != nil {
		age, retire, claim := sp.Age, sp.RetirementAge, sp.SocialSecurityAge
		benefit := retirement.WholeDollars(sp.SocialSecurity)
		sc.HasSpouse = true
		sc.SpouseAge, sc.SpouseRetirementAge, sc.SpouseSocialSecurityAge, sc.SpouseSocialSecurity = &age, &retire, &claim, &benefit
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.Write(file, sc); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
