package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wrapped/internal/cli"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Month and quarter rollups",
	RunE:  runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
	data, err := buildData()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY ROLLUP  %d", data.Year)))
	fmt.Println()

	var maxOutflow float64
	for _, m := range data.Buckets.Months {
		if v := float64(m.Outflow); v > maxOutflow {
			maxOutflow = v
		}
	}

	rows := make([][]string, 0, 12)
	for _, m := range data.Buckets.Months {
		rows = append(rows, []string{
			m.Label,
			cli.FormatNumber(int64(m.Count)),
			cli.FormatAmount(m.Outflow),
			cli.FormatAmount(m.Amount),
			cli.RenderHorizontalBar(float64(m.Outflow), maxOutflow, 20),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Txns", "Spent", "Net", ""},
		Rows:    rows,
	}))

	qRows := make([][]string, 0, 4)
	for _, q := range data.Buckets.Quarters {
		qRows = append(qRows, []string{
			q.Label,
			cli.FormatNumber(int64(q.Count)),
			cli.FormatAmount(q.Outflow),
			cli.FormatAmount(q.Amount),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Quarters",
		Headers: []string{"Quarter", "Txns", "Spent", "Net"},
		Rows:    qRows,
	}))

	return nil
}
