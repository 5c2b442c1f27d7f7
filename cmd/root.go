package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/wrapped/internal/cli"
	"github.com/theirongolddev/wrapped/internal/config"
	"github.com/theirongolddev/wrapped/internal/logger"
	"github.com/theirongolddev/wrapped/internal/model"
	"github.com/theirongolddev/wrapped/internal/pipeline"
	"github.com/theirongolddev/wrapped/internal/store"
)

var (
	flagYear             int
	flagLedgerDir        string
	flagNoCache          bool
	flagQuiet            bool
	flagTopN             int
	flagIncludeOffBudget bool
	flagIncludeTransfers bool
	flagIncomeCategories bool
	flagAllowEmpty       bool
)

var rootCmd = &cobra.Command{
	Use:   "wrapped",
	Short: "Ledger Year-in-Review CLI",
	Long:  "Turn a year of ledger transactions into a year-in-review summary: totals, trends, rankings, and a savings projection.",
	RunE:  runWrapped,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagYear, "year", "y", 0, "Target year (default: config, else last year)")
	rootCmd.PersistentFlags().StringVarP(&flagLedgerDir, "ledger-dir", "d", "", "Ledger export directory")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite cache, reparse everything")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().IntVarP(&flagTopN, "top", "n", pipeline.DefaultTopN, "Ranking length for payees/categories")
	rootCmd.PersistentFlags().BoolVar(&flagIncludeOffBudget, "include-off-budget", false, "Count off-budget account transactions")
	rootCmd.PersistentFlags().BoolVar(&flagIncludeTransfers, "include-transfers", false, "Count transfers between on-budget accounts")
	rootCmd.PersistentFlags().BoolVar(&flagIncomeCategories, "include-income-categories", false, "Let income categories contribute to category totals")
	rootCmd.PersistentFlags().BoolVar(&flagAllowEmpty, "allow-empty", false, "Permit an empty-year report instead of failing")
}

// buildOptions merges the config file with command-line overrides.
func buildOptions(cfg config.Config) pipeline.Options {
	opts := pipeline.OptionsFromConfig(cfg)

	if flagYear != 0 {
		opts.Year = flagYear
	}
	if flagIncludeOffBudget {
		opts.IncludeOffBudget = true
	}
	if flagIncludeTransfers {
		opts.IncludeAllTransfers = true
	}
	if flagIncomeCategories {
		opts.IncludeIncomeInCategories = true
	}
	if flagAllowEmpty {
		opts.AllowEmpty = true
	}
	opts.TopN = flagTopN

	return opts
}

func ledgerDir(cfg config.Config) string {
	if flagLedgerDir != "" {
		return flagLedgerDir
	}
	if cfg.General.LedgerDir != "" {
		return cfg.General.LedgerDir
	}
	return "."
}

func newLogger() zerolog.Logger {
	return logger.New(flagQuiet)
}

// loadData is the shared loading path used by all commands. It uses the
// SQLite cache when available for fast repeat runs, falling back to a full
// parse on any cache trouble.
func loadData() (*pipeline.LoadResult, error) {
	cfg, _ := config.Load()
	dir := ledgerDir(cfg)

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Scanning ledger exports...\n")
	}

	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		if current%10 == 0 || current == total {
			fmt.Fprintf(os.Stderr, "\r  Parsing [%d/%d]", current, total)
		}
	}

	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, doing full parse\n")
			}
		} else {
			defer cache.Close()

			cr, err := pipeline.LoadWithCache(dir, cache, progressFn)
			if err != nil {
				if !flagQuiet {
					fmt.Fprintf(os.Stderr, "\n  Cache error, falling back to full parse\n")
				}
			} else {
				if !flagQuiet && cr.TotalFiles > 0 {
					fmt.Fprintf(os.Stderr, "\r  %s transactions from %d files (%d cached)    \n",
						cli.FormatNumber(int64(len(cr.Transactions))),
						cr.TotalFiles, cr.CacheHits,
					)
				}
				return &cr.LoadResult, nil
			}
		}
	}

	result, err := pipeline.Load(dir, progressFn)
	if err != nil {
		return nil, err
	}

	if !flagQuiet && result.TotalFiles > 0 {
		fmt.Fprintf(os.Stderr, "\r  Parsed %s transactions across %d accounts    \n",
			cli.FormatNumber(int64(len(result.Transactions))),
			result.AccountCount,
		)
	}

	return result, nil
}

// buildData loads exports and runs the full pipeline.
func buildData() (*model.WrappedData, error) {
	cfg, _ := config.Load()
	opts := buildOptions(cfg)

	result, err := loadData()
	if err != nil {
		return nil, err
	}
	if result.FileErrors > 0 && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  %d files could not be read\n", result.FileErrors)
	}

	return pipeline.BuildWrappedData(result.Transactions, opts, newLogger())
}
