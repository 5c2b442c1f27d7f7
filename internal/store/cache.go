// Package store provides a SQLite-backed cache for parsed ledger exports,
// so repeat runs skip reparsing unchanged files.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/wrapped/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed transaction caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked mtime and size for a file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
}

// GetTrackedFiles returns a map of file_path -> FileInfo for all tracked
// files.
func (c *Cache) GetTrackedFiles() (map[string]FileInfo, error) {
	rows, err := c.db.Query("SELECT file_path, mtime_ns, size_bytes FROM file_tracker")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.MtimeNs, &fi.SizeBytes); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// SaveFile replaces the cached transactions for one export file and
// records its tracking info, all in one transaction.
func (c *Cache) SaveFile(filePath string, txns []model.Transaction, mtimeNs, sizeBytes int64) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM transactions WHERE file_path = ?", filePath); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, t := range txns {
		_, err = tx.Exec(`INSERT OR REPLACE INTO transactions
			(id, file_path, account_id, date, amount, category_id, category_name,
			 payee_id, payee_name, is_transfer, is_off_budget, transfer_to_off_budget,
			 is_income, parsed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, filePath, t.AccountID, t.Date.UTC().Format("2006-01-02"), t.Amount,
			t.CategoryID, t.CategoryName, t.PayeeID, t.PayeeName,
			boolInt(t.IsTransfer), boolInt(t.IsOffBudget), boolInt(t.TransferToOffBudget),
			boolInt(t.IsIncome), now,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO file_tracker (file_path, mtime_ns, size_bytes)
		VALUES (?, ?, ?)`, filePath, mtimeNs, sizeBytes)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// LoadAll reads every cached transaction from the database.
func (c *Cache) LoadAll() ([]model.Transaction, error) {
	rows, err := c.db.Query(`SELECT
		id, file_path, account_id, date, amount, category_id, category_name,
		payee_id, payee_name, is_transfer, is_off_budget, transfer_to_off_budget, is_income
		FROM transactions`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var dateStr string
		var isTransfer, isOffBudget, toOffBudget, isIncome int
		var accountID, categoryID, categoryName, payeeID, payeeName sql.NullString

		err := rows.Scan(
			&t.ID, &t.SourceFile, &accountID, &dateStr, &t.Amount,
			&categoryID, &categoryName, &payeeID, &payeeName,
			&isTransfer, &isOffBudget, &toOffBudget, &isIncome,
		)
		if err != nil {
			return nil, err
		}

		t.AccountID = accountID.String
		t.CategoryID = categoryID.String
		t.CategoryName = categoryName.String
		t.PayeeID = payeeID.String
		t.PayeeName = payeeName.String
		t.IsTransfer = isTransfer != 0
		t.IsOffBudget = isOffBudget != 0
		t.TransferToOffBudget = toOffBudget != 0
		t.IsIncome = isIncome != 0
		t.Date, _ = time.Parse("2006-01-02", dateStr)

		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// DeleteFile removes a file's transactions and its tracking entry.
func (c *Cache) DeleteFile(filePath string) error {
	if _, err := c.db.Exec("DELETE FROM transactions WHERE file_path = ?", filePath); err != nil {
		return err
	}
	_, err := c.db.Exec("DELETE FROM file_tracker WHERE file_path = ?", filePath)
	return err
}

// TransactionCount returns the number of cached transactions.
func (c *Cache) TransactionCount() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count)
	return count, err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
