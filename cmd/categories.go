package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wrapped/internal/cli"
	"github.com/theirongolddev/wrapped/internal/model"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Category trends with growth and decline rankings",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	data, err := buildData()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CATEGORIES  %d", data.Year)))
	fmt.Println()

	if len(data.Trends) == 0 {
		fmt.Println("  No categorized spending this year.")
		return nil
	}

	rows := make([][]string, 0, len(data.Trends))
	for _, ct := range data.Trends {
		var total int64
		values := make([]float64, len(ct.Monthly))
		for i, v := range ct.Monthly {
			total += v
			values[i] = float64(v)
		}
		rows = append(rows, []string{
			ct.CategoryName,
			cli.FormatAmount(total),
			cli.RenderSparkline(values),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Year Total", "Trend"},
		Rows:    rows,
	}))

	printGrowthTable("Growing", data.Growth)
	printGrowthTable("Declining", data.Decline)

	return nil
}

func printGrowthTable(title string, entries []model.CategoryGrowth) {
	if len(entries) == 0 {
		return
	}
	n := min(flagTopN, len(entries))
	rows := make([][]string, 0, n)
	for _, g := range entries[:n] {
		rows = append(rows, []string{
			g.CategoryName,
			cli.FormatAmount(g.FirstMonthAmount),
			cli.FormatAmount(g.LastMonthAmount),
			cli.FormatAmount(g.TotalChange),
			cli.FormatGrowth(g.PercentChange.Defined, g.PercentChange.Value),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"Category", "First", "Last", "Change", "Rate"},
		Rows:    rows,
	}))
}
