package cli

import (
	"fmt"
	"io"

	"retirement_planner/internal/retirement"

	"github.com/spf13/cobra"
)

func newRothCmd(opts *options) *cobra.Command {
	var in retirement.RothInput
	cmd := &cobra.Command{
		Use:   "roth",
		Short: "Compare tax paid now against tax avoided later for a Roth conversion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := in.Validate(); err != nil {
				return err
			}
			res := retirement.AnalyzeRoth(in)
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			printRoth(cmd.OutOrStdout(), res)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&in.CurrentAge, "current-age", 50, "Current age")
	fl.Float64Var(&in.TraditionalBalance, "balance", 0, "Traditional IRA balance")
	fl.Float64Var(&in.CurrentTaxBracket, "current-bracket", 0, "Current marginal tax bracket, percent")
	fl.Float64Var(&in.RetirementTaxBracket, "retirement-bracket", 0, "Expected tax bracket in retirement, percent")
	fl.Float64Var(&in.ConversionAmount, "amount", 0, "Amount to convert")
	fl.IntVar(&in.ConversionYear, "year", 0, "Year of the conversion")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func printRoth(w io.Writer, res retirement.RothResult) {
	section(w, "Roth Conversion")
	field(w, "Taxes paid now", retirement.FormatDollars(float64(res.TaxesPaidNow)))
	field(w, "Taxes saved later", retirement.FormatDollars(float64(res.TaxesSavedLater)))
	net := retirement.FormatDollars(float64(res.NetBenefit))
	if res.Favorable {
		field(w, "Net benefit", successStyle.Render(net))
	} else {
		field(w, "Net benefit", errorStyle.Render(net))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, res.Recommendation)
}
