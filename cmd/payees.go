package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wrapped/internal/cli"
)

var payeesCmd = &cobra.Command{
	Use:   "payees",
	Short: "Top payees by amount spent",
	RunE:  runPayees,
}

func init() {
	rootCmd.AddCommand(payeesCmd)
}

func runPayees(_ *cobra.Command, _ []string) error {
	data, err := buildData()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TOP PAYEES  %d", data.Year)))
	fmt.Println()

	if len(data.TopPayees) == 0 {
		fmt.Println("  No payee spending this year.")
		return nil
	}

	maxAmount := float64(data.TopPayees[0].Amount)

	rows := make([][]string, 0, len(data.TopPayees))
	for _, p := range data.TopPayees {
		rows = append(rows, []string{
			p.Name,
			cli.FormatAmount(p.Amount),
			cli.FormatNumber(int64(p.TransactionCount)),
			cli.RenderHorizontalBar(float64(p.Amount), maxAmount, 20),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Payee", "Spent", "Txns", ""},
		Rows:    rows,
	}))

	return nil
}
