package pipeline

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/theirongolddev/wrapped/internal/model"
)

// scenarioTxns is the mixed-policy fixture: salary income, a transfer
// between two on-budget accounts, and an off-budget purchase.
func scenarioTxns() []model.Transaction {
	return []model.Transaction{
		{ID: "t1", Date: day(2025, time.January, 15), Amount: 100_000, IsIncome: true, PayeeID: "emp", PayeeName: "Employer"},
		{ID: "t2", Date: day(2025, time.February, 1), Amount: -40_000, IsTransfer: true},
		{ID: "t3", Date: day(2025, time.March, 5), Amount: -20_000, IsOffBudget: true, PayeeID: "shop", PayeeName: "Shop"},
	}
}

func TestBuildWrappedData_DefaultPolicy(t *testing.T) {
	data, err := BuildWrappedData(scenarioTxns(), Options{Year: 2025}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	if data.TotalIncome != 100_000 {
		t.Errorf("TotalIncome = %d, want 100000", data.TotalIncome)
	}
	// The on-budget transfer and the off-budget purchase are excluded.
	if data.TotalExpenses != 0 {
		t.Errorf("TotalExpenses = %d, want 0", data.TotalExpenses)
	}
	if data.NetSavings != 100_000 {
		t.Errorf("NetSavings = %d, want 100000", data.NetSavings)
	}
	if data.SavingsRate != 1.0 {
		t.Errorf("SavingsRate = %v, want 1.0", data.SavingsRate)
	}
}

func TestBuildWrappedData_OffBudgetOptIn(t *testing.T) {
	data, err := BuildWrappedData(scenarioTxns(), Options{Year: 2025, IncludeOffBudget: true}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	if data.TotalExpenses != 20_000 {
		t.Errorf("TotalExpenses = %d, want 20000", data.TotalExpenses)
	}
	if data.NetSavings != 80_000 {
		t.Errorf("NetSavings = %d, want 80000", data.NetSavings)
	}
	if data.SavingsRate != 0.8 {
		t.Errorf("SavingsRate = %v, want 0.8", data.SavingsRate)
	}
}

func TestBuildWrappedData_EmptyInput(t *testing.T) {
	_, err := BuildWrappedData(nil, Options{Year: 2025}, zerolog.Nop())
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}

	// Records exist but none fall inside the year.
	outside := []model.Transaction{
		{ID: "x", Date: day(2023, time.June, 1), Amount: -100},
	}
	_, err = BuildWrappedData(outside, Options{Year: 2025}, zerolog.Nop())
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput for out-of-year input", err)
	}
}

func TestBuildWrappedData_AllowEmpty(t *testing.T) {
	data, err := BuildWrappedData(nil, Options{Year: 2025, AllowEmpty: true}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	if len(data.Buckets.Days) != 365 {
		t.Errorf("day axis = %d, want 365 even when empty", len(data.Buckets.Days))
	}
	if data.TotalIncome != 0 || data.TotalExpenses != 0 || data.NetSavings != 0 {
		t.Errorf("totals = %d/%d/%d, want zeroes", data.TotalIncome, data.TotalExpenses, data.NetSavings)
	}
	if data.SavingsRate != 0 {
		t.Errorf("SavingsRate = %v, want 0 with no income", data.SavingsRate)
	}
}

func TestBuildWrappedData_Deterministic(t *testing.T) {
	txns := []model.Transaction{
		{ID: "a", Date: day(2025, time.January, 3), Amount: -1_200, CategoryID: "food", CategoryName: "Food", PayeeID: "p1", PayeeName: "Grocer"},
		{ID: "b", Date: day(2025, time.April, 9), Amount: -8_000, CategoryID: "rent", CategoryName: "Rent", PayeeID: "p2", PayeeName: "Landlord"},
		{ID: "c", Date: day(2025, time.April, 9), Amount: 250_000, IsIncome: true},
		{ID: "d", Date: day(2025, time.November, 20), Amount: -3_400, CategoryID: "food", CategoryName: "Food", PayeeID: "p1", PayeeName: "Grocer"},
	}
	opts := Options{Year: 2025}

	first, err := BuildWrappedData(txns, opts, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	second, err := BuildWrappedData(txns, opts, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical input produced structurally different records")
	}
}

func TestBuildWrappedData_AssemblesAllSections(t *testing.T) {
	txns := []model.Transaction{
		{ID: "a", Date: day(2025, time.January, 3), Amount: -1_200, CategoryID: "food", CategoryName: "Food", PayeeID: "p1", PayeeName: "Grocer"},
		{ID: "b", Date: day(2025, time.June, 9), Amount: -5_600, CategoryID: "food", CategoryName: "Food", PayeeID: "p1", PayeeName: "Grocer"},
		{ID: "c", Date: day(2025, time.June, 10), Amount: 400_000, IsIncome: true},
		{ID: "old", Date: day(2024, time.June, 10), Amount: -100},
	}

	data, err := BuildWrappedData(txns, Options{Year: 2025}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	if data.Year != 2025 {
		t.Errorf("Year = %d", data.Year)
	}
	if data.DroppedRecords != 1 {
		t.Errorf("DroppedRecords = %d, want 1", data.DroppedRecords)
	}
	if len(data.TopPayees) != 1 || data.TopPayees[0].Name != "Grocer" {
		t.Errorf("TopPayees = %+v", data.TopPayees)
	}
	if len(data.Trends) != 1 || data.Trends[0].CategoryName != "Food" {
		t.Errorf("Trends = %+v", data.Trends)
	}
	if len(data.Growth) != 1 {
		t.Errorf("Growth = %+v, want the Food increase ranked", data.Growth)
	}
	if len(data.Distribution.Buckets) == 0 {
		t.Error("Distribution has no buckets (default edges not applied)")
	}
	if len(data.Projection.Actual) != 12 {
		t.Errorf("Projection.Actual = %d points, want 12", len(data.Projection.Actual))
	}
}

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{Year: 2025}.withDefaults()
	if len(opts.HistogramEdges) == 0 {
		t.Error("default histogram edges missing")
	}
	if opts.TopN != DefaultTopN {
		t.Errorf("TopN = %d, want %d", opts.TopN, DefaultTopN)
	}

	custom := Options{Year: 2025, HistogramEdges: []int64{0, 100}, TopN: 3}.withDefaults()
	if len(custom.HistogramEdges) != 2 || custom.TopN != 3 {
		t.Error("explicit options overridden by defaults")
	}
}
