// Package cli runs the retirement calculator from the command line, without
// a database or network.
package cli

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type options struct {
	jsonOutput bool
}

// NewRootCmd builds the planner command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "planner",
		Short: "Retirement readiness and Roth conversion calculator",
		Long: `planner projects retirement savings with 6% growth and a 4% safe withdrawal,
adjusts Social Security for the claiming age and scores readiness from 0 to 100.

Examples:
  planner project --current-age 62 --retirement-age 67 --savings 500000 \
    --monthly-expenses 5000 --ss-age 67 --ss-benefit 2500
  planner roth --amount 100000 --current-bracket 24 --retirement-bracket 22`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	root.AddCommand(newProjectCmd(opts), newRothCmd(opts))
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ ")+err.Error())
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
