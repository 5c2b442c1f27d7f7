// Package source discovers and parses ledger export files (CSV and JSON).
package source

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/wrapped/internal/model"
)

// ErrUnsupportedFormat is returned for files whose format the parser does
// not recognize.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFile reads a ledger export file and produces transactions. Rows
// that cannot be decoded are counted in ParseErrors and skipped; only an
// unreadable file is a fatal error. Rows without an id are assigned one so
// downstream caching can key on it.
func ParseFile(df DiscoveredFile) ParseResult {
	f, err := os.Open(df.Path)
	if err != nil {
		return ParseResult{Err: err}
	}
	defer func() { _ = f.Close() }()

	switch df.Format {
	case FormatCSV:
		return parseCSV(df, f)
	case FormatJSON:
		return parseJSON(df, f)
	default:
		return ParseResult{Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, df.Format)}
	}
}

func parseCSV(df DiscoveredFile, r io.Reader) ParseResult {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return ParseResult{}
		}
		return ParseResult{Err: fmt.Errorf("reading header: %w", err)}
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}

	field := func(row []string, name string) string {
		if i, ok := col[name]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var result ParseResult
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.ParseErrors++
			continue
		}

		date, err := parseDate(field(row, "date"))
		if err != nil {
			result.ParseErrors++
			continue
		}
		amount, err := parseAmount(field(row, "amount"))
		if err != nil {
			result.ParseErrors++
			continue
		}

		t := model.Transaction{
			ID:                  field(row, "id"),
			AccountID:           field(row, "account_id"),
			Date:                date,
			Amount:              amount,
			CategoryID:          field(row, "category_id"),
			CategoryName:        field(row, "category_name"),
			PayeeID:             field(row, "payee_id"),
			PayeeName:           field(row, "payee_name"),
			IsTransfer:          parseBool(field(row, "transfer")),
			IsOffBudget:         parseBool(field(row, "off_budget")),
			TransferToOffBudget: parseBool(field(row, "transfer_off_budget")),
			IsIncome:            parseBool(field(row, "income")),
			SourceFile:          df.Path,
		}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.AccountID == "" {
			t.AccountID = df.Account
		}

		result.Transactions = append(result.Transactions, t)
	}

	return result
}

func parseJSON(df DiscoveredFile, r io.Reader) ParseResult {
	data, err := io.ReadAll(r)
	if err != nil {
		return ParseResult{Err: err}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return ParseResult{Err: fmt.Errorf("decoding export: %w", err)}
	}

	var result ParseResult
	for _, msg := range raw {
		var rec rawRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			result.ParseErrors++
			continue
		}

		date, err := parseDate(rec.Date)
		if err != nil {
			result.ParseErrors++
			continue
		}

		t := model.Transaction{
			ID:                  rec.ID,
			AccountID:           rec.AccountID,
			Date:                date,
			Amount:              rec.Amount,
			CategoryID:          rec.CategoryID,
			CategoryName:        rec.CategoryName,
			PayeeID:             rec.PayeeID,
			PayeeName:           rec.PayeeName,
			IsTransfer:          rec.IsTransfer,
			IsOffBudget:         rec.IsOffBudget,
			TransferToOffBudget: rec.TransferToOffBudget,
			IsIncome:            rec.IsIncome,
			SourceFile:          df.Path,
		}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.AccountID == "" {
			t.AccountID = df.Account
		}

		result.Transactions = append(result.Transactions, t)
	}

	return result
}

// parseDate accepts "2006-01-02" dates, with RFC 3339 as a fallback for
// exports that carry full timestamps. Times are normalized to UTC dates.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// parseAmount accepts signed minor-unit integers ("-1234") or decimal
// currency values ("-12.34", "-12.3"). Decimal values allow at most two
// fraction digits.
func parseAmount(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("empty amount")
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if !hasFrac {
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, err
		}
		if neg {
			n = -n
		}
		return n, nil
	}

	if whole == "" || len(frac) == 0 || len(frac) > 2 {
		return 0, fmt.Errorf("malformed amount %q", s)
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, err
	}
	if len(frac) == 1 {
		frac += "0"
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, err
	}

	n := units*100 + cents
	if neg {
		n = -n
	}
	return n, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "y":
		return true
	default:
		return false
	}
}
