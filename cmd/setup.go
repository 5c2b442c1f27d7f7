package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/wrapped/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	yearStr := strconv.Itoa(cfg.General.Year)
	ledgerDir := cfg.General.LedgerDir

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ledger export directory").
				Description("Where your CSV/JSON transaction exports live.").
				Value(&ledgerDir),
			huh.NewInput().
				Title("Target year").
				Description("The year to review.").
				Value(&yearStr).
				Validate(func(s string) error {
					y, err := strconv.Atoi(s)
					if err != nil {
						return fmt.Errorf("not a year: %q", s)
					}
					if y < 1900 || y > time.Now().Year()+1 {
						return fmt.Errorf("implausible year %d", y)
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Include off-budget accounts?").
				Value(&cfg.Options.IncludeOffBudget),
			huh.NewConfirm().
				Title("Count transfers between on-budget accounts?").
				Value(&cfg.Options.IncludeAllTransfers),
			huh.NewConfirm().
				Title("Let income categories contribute to category totals?").
				Value(&cfg.Options.IncludeIncomeInCategories),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.General.LedgerDir = ledgerDir
	cfg.General.Year, _ = strconv.Atoi(yearStr)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `wrapped setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
