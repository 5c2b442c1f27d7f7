// Package model defines domain types for ledger transactions and the
// year-in-review summary.
package model

import "time"

// Transaction is one raw ledger record. Amount is in signed integer minor
// units (cents): negative = outflow, positive = inflow.
type Transaction struct {
	ID           string
	AccountID    string
	Date         time.Time
	Amount       int64
	CategoryID   string
	CategoryName string
	PayeeID      string
	PayeeName    string

	IsTransfer bool
	// IsOffBudget marks the transaction's own account as off-budget.
	IsOffBudget bool
	// TransferToOffBudget marks a transfer whose counterpart account is
	// off-budget. Money actually left (or entered) the budget, so such a
	// transfer behaves like a real expense or income.
	TransferToOffBudget bool
	IsIncome            bool

	// SourceFile is the export file this record was parsed from.
	SourceFile string
}

// Normalized wraps a Transaction with the inclusion flags resolved by the
// normalizer policy. Never mutated after creation.
type Normalized struct {
	Transaction

	// IncludeInTotals gates amount sums (income/expense totals, bucket
	// amounts). Activity counts ignore it.
	IncludeInTotals bool
	// IncludeInCategories gates category trend and payee aggregation.
	IncludeInCategories bool
}
