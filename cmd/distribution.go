package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wrapped/internal/cli"
)

var distributionCmd = &cobra.Command{
	Use:   "distribution",
	Short: "Transaction-size histogram with median and mode",
	RunE:  runDistribution,
}

func init() {
	rootCmd.AddCommand(distributionCmd)
}

func runDistribution(_ *cobra.Command, _ []string) error {
	data, err := buildData()
	if err != nil {
		return err
	}

	dist := data.Distribution

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TRANSACTION SIZES  %d", data.Year)))
	fmt.Println()

	maxCount := 0
	for _, b := range dist.Buckets {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	rows := make([][]string, 0, len(dist.Buckets))
	for _, b := range dist.Buckets {
		rows = append(rows, []string{
			cli.FormatRangeLabel(b.Label),
			cli.FormatNumber(int64(b.Count)),
			cli.FormatShare(b.Percent),
			cli.RenderHorizontalBar(float64(b.Count), float64(maxCount), 20),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Range", "Count", "Share", ""},
		Rows:    rows,
	}))

	fmt.Printf("  Median: %s   Mode: %s",
		cli.FormatAmountFloat(dist.Median),
		cli.FormatAmountFloat(dist.Mode))
	if dist.MostCommonRange != "" {
		fmt.Printf("   Most common: %s", cli.FormatRangeLabel(dist.MostCommonRange))
	}
	fmt.Println()
	fmt.Println()

	return nil
}
