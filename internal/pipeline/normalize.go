// Package pipeline turns a flat ledger transaction list into the
// year-in-review summary: normalization, time bucketing, statistics,
// trends, projection, and final assembly.
package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/theirongolddev/wrapped/internal/model"
)

// NormalizeResult holds the normalizer output.
type NormalizeResult struct {
	Transactions []model.Normalized
	// Dropped counts records discarded for falling outside the target
	// year's calendar range.
	Dropped int
}

// Normalize filters and classifies raw transactions. Records dated outside
// the target year are dropped with a warning; everything else is kept with
// its inclusion flags resolved. No kept transaction is ever excluded from
// activity counting — the flags only gate amount sums and category
// analysis.
func Normalize(txns []model.Transaction, opts Options, log zerolog.Logger) NormalizeResult {
	var result NormalizeResult
	result.Transactions = make([]model.Normalized, 0, len(txns))

	for _, t := range txns {
		if t.Date.IsZero() || t.Date.Year() != opts.Year {
			result.Dropped++
			log.Warn().
				Str("id", t.ID).
				Time("date", t.Date).
				Int("target_year", opts.Year).
				Msg("transaction outside target year, dropped")
			continue
		}

		n := model.Normalized{Transaction: t}
		n.IncludeInTotals = includeInTotals(t, opts)
		n.IncludeInCategories = n.IncludeInTotals && !t.IsTransfer &&
			(!t.IsIncome || opts.IncludeIncomeInCategories)

		result.Transactions = append(result.Transactions, n)
	}

	return result
}

// includeInTotals resolves the transfer and off-budget policy:
//   - off-budget account transactions are excluded unless opted in
//   - transfers between two on-budget accounts shuffle money without
//     changing the budget's net worth, so they are excluded unless the
//     operator opted into counting all transfers
//   - a transfer whose counterpart account is off-budget moved money out
//     of (or into) the budget and counts like a real expense or income
//   - income always counts
func includeInTotals(t model.Transaction, opts Options) bool {
	if t.IsOffBudget && !opts.IncludeOffBudget {
		return false
	}
	if t.IsTransfer && !opts.IncludeAllTransfers && !t.TransferToOffBudget {
		return false
	}
	return true
}
