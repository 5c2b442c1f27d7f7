package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wrapped/internal/cli"
	"github.com/theirongolddev/wrapped/internal/model"
)

var wrappedCmd = &cobra.Command{
	Use:   "summary",
	Short: "Full year-in-review summary",
	RunE:  runWrapped,
}

func init() {
	rootCmd.AddCommand(wrappedCmd)
}

func runWrapped(_ *cobra.Command, _ []string) error {
	data, err := buildData()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("YOUR %d WRAPPED", data.Year)))
	fmt.Println()

	rows := [][]string{
		{"Income", cli.FormatAmount(data.TotalIncome)},
		{"Expenses", cli.FormatAmount(data.TotalExpenses)},
		{"Net Savings", cli.FormatAmount(data.NetSavings)},
		{"Savings Rate", cli.FormatPercent(data.SavingsRate)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Busiest month by activity
	busiest := 0
	for i, m := range data.Buckets.Months {
		if m.Count > data.Buckets.Months[busiest].Count {
			busiest = i
		}
	}
	fmt.Printf("  Busiest month: %s (%s transactions)\n",
		data.Buckets.Months[busiest].Label,
		cli.FormatNumber(int64(data.Buckets.Months[busiest].Count)))

	// Monthly spending sparkline
	values := make([]float64, len(data.Buckets.Months))
	for i, m := range data.Buckets.Months {
		values[i] = float64(m.Outflow)
	}
	fmt.Printf("  Spending by month: %s\n\n", cli.RenderSparkline(values))

	if len(data.TopPayees) > 0 {
		n := min(3, len(data.TopPayees))
		payeeRows := make([][]string, 0, n)
		for _, p := range data.TopPayees[:n] {
			payeeRows = append(payeeRows, []string{
				p.Name,
				cli.FormatAmount(p.Amount),
				cli.FormatNumber(int64(p.TransactionCount)),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Top Payees",
			Headers: []string{"Payee", "Spent", "Txns"},
			Rows:    payeeRows,
		}))
	}

	if len(data.Growth) > 0 || len(data.Decline) > 0 {
		rows := [][]string{}
		if len(data.Growth) > 0 {
			rows = append(rows, growthRow("Fastest growing", data.Growth[0]))
		}
		if len(data.Decline) > 0 {
			rows = append(rows, growthRow("Biggest decline", data.Decline[0]))
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Category Movers",
			Headers: []string{"", "Category", "Change", "Rate"},
			Rows:    rows,
		}))
	}

	if data.Distribution.MostCommonRange != "" {
		fmt.Printf("  Typical transaction: %s median, most often %s\n",
			cli.FormatAmountFloat(data.Distribution.Median),
			cli.FormatRangeLabel(data.Distribution.MostCommonRange))
	}

	proj := data.Projection
	fmt.Printf("  Projected savings by end of %d: %s\n",
		data.Year+1, cli.FormatAmountFloat(proj.YearEndSavings))
	if proj.MonthsUntilZero != nil {
		fmt.Printf("  At the current rate savings run out in %d months\n", *proj.MonthsUntilZero)
	}
	for _, m := range proj.Milestones {
		marker := ""
		if m.Projected {
			marker = " (projected)"
		}
		fmt.Printf("  %s — %s%s\n", m.Label, m.DateReached.Format("Jan 2, 2006"), marker)
	}
	fmt.Println()

	if data.DroppedRecords > 0 {
		fmt.Printf("  %d records outside %d were dropped\n\n", data.DroppedRecords, data.Year)
	}

	return nil
}

func growthRow(label string, g model.CategoryGrowth) []string {
	return []string{
		label,
		g.CategoryName,
		cli.FormatAmount(g.TotalChange),
		cli.FormatGrowth(g.PercentChange.Defined, g.PercentChange.Value),
	}
}
