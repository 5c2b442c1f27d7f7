package source

import "github.com/theirongolddev/wrapped/internal/model"

// DiscoveredFile represents a ledger export found during directory
// scanning.
type DiscoveredFile struct {
	Path string
	// Account is derived from the file name, e.g. "checking.csv" ->
	// "checking". Used when a row carries no account id of its own.
	Account string
	Format  Format
}

// Format identifies the export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseResult holds the output of parsing a single export file.
type ParseResult struct {
	Transactions []model.Transaction
	// ParseErrors counts rows that could not be decoded. Bad rows are
	// skipped, never fatal.
	ParseErrors int
	Err         error
}

// rawRecord is the JSON export row shape.
type rawRecord struct {
	ID                  string `json:"id"`
	AccountID           string `json:"account_id"`
	Date                string `json:"date"`
	Amount              int64  `json:"amount"`
	CategoryID          string `json:"category_id"`
	CategoryName        string `json:"category_name"`
	PayeeID             string `json:"payee_id"`
	PayeeName           string `json:"payee_name"`
	IsTransfer          bool   `json:"is_transfer"`
	IsOffBudget         bool   `json:"is_off_budget"`
	TransferToOffBudget bool   `json:"transfer_to_off_budget"`
	IsIncome            bool   `json:"is_income"`
}
