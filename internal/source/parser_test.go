package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeExport creates a temp export file and returns a DiscoveredFile
// for it.
func writeExport(t *testing.T, name string, format Format, content string) DiscoveredFile {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return DiscoveredFile{
		Path:    path,
		Account: strings.TrimSuffix(name, filepath.Ext(name)),
		Format:  format,
	}
}

func TestParseFile_CSV(t *testing.T) {
	df := writeExport(t, "checking.csv", FormatCSV,
		"id,account_id,date,amount,category_id,category_name,payee_id,payee_name,transfer,off_budget,transfer_off_budget,income\n"+
			"t1,acc1,2025-03-10,-1250,cat1,Food,p1,Grocer,false,false,false,false\n"+
			"t2,acc1,2025-03-11,250000,,,emp,Employer,false,false,false,true\n")

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Transactions) != 2 {
		t.Fatalf("parsed %d transactions, want 2", len(result.Transactions))
	}

	tx := result.Transactions[0]
	if tx.ID != "t1" || tx.AccountID != "acc1" {
		t.Errorf("ids = %q/%q", tx.ID, tx.AccountID)
	}
	if !tx.Date.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v", tx.Date)
	}
	if tx.Amount != -1250 {
		t.Errorf("Amount = %d, want -1250", tx.Amount)
	}
	if tx.CategoryName != "Food" || tx.PayeeName != "Grocer" {
		t.Errorf("names = %q/%q", tx.CategoryName, tx.PayeeName)
	}
	if tx.SourceFile != df.Path {
		t.Errorf("SourceFile = %q", tx.SourceFile)
	}

	if !result.Transactions[1].IsIncome {
		t.Error("t2 should be income")
	}
}

func TestParseFile_CSVColumnOrderIrrelevant(t *testing.T) {
	df := writeExport(t, "checking.csv", FormatCSV,
		"amount,date,id\n-500,2025-01-02,t1\n")

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatal(result.Err)
	}
	if len(result.Transactions) != 1 || result.Transactions[0].Amount != -500 {
		t.Errorf("got %+v", result.Transactions)
	}
}

func TestParseFile_CSVMalformedRows(t *testing.T) {
	df := writeExport(t, "checking.csv", FormatCSV,
		"id,date,amount\n"+
			"t1,2025-03-10,-100\n"+
			"t2,not-a-date,-100\n"+
			"t3,2025-03-12,not-an-amount\n"+
			"t4,2025-03-13,-300\n")

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("bad rows should not be fatal: %v", result.Err)
	}
	if len(result.Transactions) != 2 {
		t.Errorf("parsed %d transactions, want 2", len(result.Transactions))
	}
	if result.ParseErrors != 2 {
		t.Errorf("ParseErrors = %d, want 2", result.ParseErrors)
	}
}

func TestParseFile_MissingIDAndAccountFilled(t *testing.T) {
	df := writeExport(t, "savings.csv", FormatCSV,
		"date,amount\n2025-03-10,-100\n2025-03-11,-200\n")

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatal(result.Err)
	}

	a, b := result.Transactions[0], result.Transactions[1]
	if a.ID == "" || b.ID == "" {
		t.Error("rows without ids should be assigned one")
	}
	if a.ID == b.ID {
		t.Error("assigned ids must be unique")
	}
	if a.AccountID != "savings" {
		t.Errorf("AccountID = %q, want file-derived account", a.AccountID)
	}
}

func TestParseFile_JSON(t *testing.T) {
	df := writeExport(t, "checking.json", FormatJSON,
		`[
			{"id":"t1","account_id":"acc1","date":"2025-06-01","amount":-4500,"payee_name":"Cafe","is_transfer":false},
			{"id":"t2","account_id":"acc1","date":"2025-06-02","amount":-900,"is_transfer":true,"transfer_to_off_budget":true}
		]`)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Transactions) != 2 {
		t.Fatalf("parsed %d transactions, want 2", len(result.Transactions))
	}
	if result.Transactions[0].Amount != -4500 {
		t.Errorf("Amount = %d", result.Transactions[0].Amount)
	}
	if !result.Transactions[1].TransferToOffBudget {
		t.Error("transfer_to_off_budget not decoded")
	}
}

func TestParseFile_JSONNotAnArray(t *testing.T) {
	df := writeExport(t, "checking.json", FormatJSON, `{"oops": true}`)
	if result := ParseFile(df); result.Err == nil {
		t.Error("expected an error for a non-array export")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"plain date", "2025-03-10", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), false},
		{"rfc3339 truncated to date", "2025-03-10T18:30:00Z", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), false},
		{"rfc3339 with offset normalizes to UTC", "2025-03-11T01:30:00+07:00", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "03/10/2025", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"-1234", -1234, false},
		{"1234", 1234, false},
		{"+50", 50, false},
		{"-12.34", -1234, false},
		{"-12.3", -1230, false},
		{"0.05", 5, false},
		{"", 0, true},
		{"-12.345", 0, true},
		{".50", 0, true},
		{"12.", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseAmount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// FuzzParseAmount checks the amount parser never panics on arbitrary
// input, since it processes untrusted export files.
func FuzzParseAmount(f *testing.F) {
	f.Add("-1234")
	f.Add("-12.34")
	f.Add("+0.5")
	f.Add(".")
	f.Add("--5")
	f.Add("")
	f.Add("9223372036854775807")

	f.Fuzz(func(t *testing.T, s string) {
		_, _ = parseAmount(s)
	})
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"checking.csv", "savings.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	files, err := ScanDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("discovered %d files, want 2", len(files))
	}
	for _, f := range files {
		switch f.Account {
		case "checking":
			if f.Format != FormatCSV {
				t.Errorf("checking format = %q", f.Format)
			}
		case "savings":
			if f.Format != FormatJSON {
				t.Errorf("savings format = %q", f.Format)
			}
		default:
			t.Errorf("unexpected file %q", f.Path)
		}
	}

	if got := CountAccounts(files); got != 2 {
		t.Errorf("CountAccounts = %d, want 2", got)
	}
}

func TestScanDir_Missing(t *testing.T) {
	files, err := ScanDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if files != nil {
		t.Errorf("files = %v, want nil", files)
	}
}
