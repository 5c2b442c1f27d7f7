package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wrapped/internal/cli"
)

var projectionCmd = &cobra.Command{
	Use:   "projection",
	Short: "Savings projection and milestones",
	RunE:  runProjection,
}

func init() {
	rootCmd.AddCommand(projectionCmd)
}

func runProjection(_ *cobra.Command, _ []string) error {
	data, err := buildData()
	if err != nil {
		return err
	}

	proj := data.Projection

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SAVINGS PROJECTION  %d → %d", data.Year, data.Year+1)))
	fmt.Println()

	rows := make([][]string, 0, len(proj.Actual)+len(proj.Projected)+1)
	for _, p := range proj.Actual {
		rows = append(rows, []string{p.Label, cli.FormatAmountFloat(p.Cumulative), ""})
	}
	rows = append(rows, []string{"---"})
	for _, p := range proj.Projected {
		rows = append(rows, []string{p.Label, cli.FormatAmountFloat(p.Cumulative), "projected"})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Cumulative", ""},
		Rows:    rows,
	}))

	fmt.Printf("  Daily net rate: %s/day (active days)\n", cli.FormatAmountFloat(proj.DailyNetRate))
	fmt.Printf("  Projected end of %d: %s\n", data.Year+1, cli.FormatAmountFloat(proj.YearEndSavings))
	if proj.MonthsUntilZero != nil {
		fmt.Printf("  Savings reach zero in %d months at this rate\n", *proj.MonthsUntilZero)
	}

	if len(proj.Milestones) > 0 {
		mRows := make([][]string, 0, len(proj.Milestones))
		for _, m := range proj.Milestones {
			when := m.DateReached.Format("Jan 2, 2006")
			if m.Projected {
				when += " (projected)"
			}
			mRows = append(mRows, []string{m.Label, cli.FormatAmount(m.Threshold), when})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Milestones",
			Headers: []string{"Milestone", "Threshold", "Reached"},
			Rows:    mRows,
		}))
	}
	fmt.Println()

	return nil
}
