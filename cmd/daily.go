package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wrapped/internal/cli"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Calendar activity heatmap and weekday breakdown",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	data, err := buildData()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY ACTIVITY  %d", data.Year)))
	fmt.Println()

	// One heat row per month, cells scaled against the busiest day of the
	// year.
	var maxOutflow float64
	for _, d := range data.Buckets.Days {
		if v := float64(d.Outflow); v > maxOutflow {
			maxOutflow = v
		}
	}

	monthStart := 0
	for i := range data.Buckets.Months {
		var values []float64
		for _, d := range data.Buckets.Days[monthStart:] {
			if int(d.Date.Month())-1 != i {
				break
			}
			values = append(values, float64(d.Outflow))
		}
		monthStart += len(values)

		fmt.Printf("  %s %s\n", cli.FormatMonth(time.Month(i+1)), cli.RenderHeatRow(values, maxOutflow))
	}
	fmt.Println()

	rows := make([][]string, 0, 7)
	for i, w := range data.Buckets.Weekdays {
		rows = append(rows, []string{
			cli.FormatDayOfWeek(i),
			cli.FormatNumber(int64(w.Count)),
			cli.FormatAmount(w.Outflow),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Day of Week",
		Headers: []string{"Day", "Txns", "Spent"},
		Rows:    rows,
	}))

	return nil
}
