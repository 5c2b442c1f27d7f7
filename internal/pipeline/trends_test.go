package pipeline

import (
	"testing"
	"time"

	"github.com/theirongolddev/wrapped/internal/model"
)

func categorized(month time.Month, catID, catName string, amount int64) model.Normalized {
	return model.Normalized{
		Transaction: model.Transaction{
			Date:         day(2025, month, 15),
			Amount:       amount,
			CategoryID:   catID,
			CategoryName: catName,
		},
		IncludeInTotals:     true,
		IncludeInCategories: true,
	}
}

func TestTrends_MonthlySeries(t *testing.T) {
	txns := []model.Normalized{
		categorized(time.January, "food", "Food", -2500),
		categorized(time.January, "food", "Food", -1500),
		categorized(time.December, "food", "Food", -6000),
		categorized(time.March, "rent", "Rent", -90000),
	}

	trends := Trends(txns, 2025)

	if len(trends) != 2 {
		t.Fatalf("got %d trends, want 2", len(trends))
	}
	// Sorted by name: Food before Rent.
	if trends[0].CategoryName != "Food" || trends[1].CategoryName != "Rent" {
		t.Fatalf("order = %q, %q", trends[0].CategoryName, trends[1].CategoryName)
	}

	food := trends[0]
	if food.Monthly[0] != 4000 {
		t.Errorf("Food January = %d, want 4000 (outflows positive)", food.Monthly[0])
	}
	if food.Monthly[11] != 6000 {
		t.Errorf("Food December = %d, want 6000", food.Monthly[11])
	}
	for m := 1; m < 11; m++ {
		if food.Monthly[m] != 0 {
			t.Errorf("Food month %d = %d, want 0 (zero-filled)", m, food.Monthly[m])
		}
	}
}

func TestTrends_SkipsUncategorizedAndExcluded(t *testing.T) {
	txns := []model.Normalized{
		categorized(time.May, "", "", -1000),
		{
			Transaction: model.Transaction{
				Date: day(2025, time.May, 2), Amount: -1000, CategoryID: "food", CategoryName: "Food",
			},
			IncludeInTotals: true, // but not IncludeInCategories
		},
	}

	if trends := Trends(txns, 2025); len(trends) != 0 {
		t.Errorf("got %d trends, want 0", len(trends))
	}
}

func TestTrends_RefundsReduceSeries(t *testing.T) {
	txns := []model.Normalized{
		categorized(time.July, "food", "Food", -5000),
		categorized(time.July, "food", "Food", 2000), // refund
	}

	trends := Trends(txns, 2025)
	if trends[0].Monthly[6] != 3000 {
		t.Errorf("July = %d, want 3000 (refund netted)", trends[0].Monthly[6])
	}
}

func TestGrowthRanking_SplitsBySign(t *testing.T) {
	trends := []model.CategoryTrend{
		{CategoryID: "a", CategoryName: "Dining", Monthly: monthly(0, 10_000, 11, 20_000)},
		{CategoryID: "b", CategoryName: "Utilities", Monthly: monthly(1, 50_000, 10, 40_000)},
		{CategoryID: "c", CategoryName: "Rent", Monthly: monthly(0, 90_000, 11, 90_000)},
	}

	growth, decline := GrowthRanking(trends)

	if len(growth) != 1 || growth[0].CategoryName != "Dining" {
		t.Fatalf("growth = %+v, want [Dining]", growth)
	}
	g := growth[0]
	if g.FirstMonthAmount != 10_000 || g.LastMonthAmount != 20_000 || g.TotalChange != 10_000 {
		t.Errorf("Dining change = %+v", g)
	}
	if !g.PercentChange.Defined || g.PercentChange.Value != 100 {
		t.Errorf("Dining rate = %+v, want +100%%", g.PercentChange)
	}

	if len(decline) != 1 || decline[0].CategoryName != "Utilities" {
		t.Fatalf("decline = %+v, want [Utilities]", decline)
	}
	d := decline[0]
	if d.TotalChange != -10_000 {
		t.Errorf("Utilities change = %d, want -10000", d.TotalChange)
	}
	if !d.PercentChange.Defined || d.PercentChange.Value != -20 {
		t.Errorf("Utilities rate = %+v, want -20%%", d.PercentChange)
	}
}

func TestGrowthRanking_UsesActiveSpan(t *testing.T) {
	// Inactive in January; growth measures from the first active month.
	trends := []model.CategoryTrend{
		{CategoryID: "a", CategoryName: "Ski Trips", Monthly: monthly(2, 5_000, 8, 15_000)},
	}

	growth, _ := GrowthRanking(trends)
	if len(growth) != 1 {
		t.Fatalf("growth = %+v, want one entry", growth)
	}
	if growth[0].FirstMonthAmount != 5_000 || growth[0].LastMonthAmount != 15_000 {
		t.Errorf("span = %d..%d, want 5000..15000", growth[0].FirstMonthAmount, growth[0].LastMonthAmount)
	}
}

func TestGrowthRanking_OrderedByMagnitude(t *testing.T) {
	trends := []model.CategoryTrend{
		{CategoryID: "a", CategoryName: "Small", Monthly: monthly(0, 1_000, 11, 2_000)},
		{CategoryID: "b", CategoryName: "Big", Monthly: monthly(0, 1_000, 11, 50_000)},
		{CategoryID: "c", CategoryName: "Alpha", Monthly: monthly(0, 1_000, 11, 2_000)},
	}

	growth, _ := GrowthRanking(trends)
	wantOrder := []string{"Big", "Alpha", "Small"} // magnitude desc, name tie-break
	for i, name := range wantOrder {
		if growth[i].CategoryName != name {
			t.Errorf("rank %d = %q, want %q", i, growth[i].CategoryName, name)
		}
	}
}

func TestGrowthRanking_SkipsInactive(t *testing.T) {
	growth, decline := GrowthRanking([]model.CategoryTrend{
		{CategoryID: "z", CategoryName: "Zero", Monthly: [12]int64{}},
	})
	if len(growth) != 0 || len(decline) != 0 {
		t.Errorf("inactive category ranked: growth=%v decline=%v", growth, decline)
	}
}

// monthly builds a sparse 12-month series from index/value pairs.
func monthly(i1 int, v1 int64, rest ...any) [12]int64 {
	var m [12]int64
	m[i1] = v1
	for j := 0; j+1 < len(rest); j += 2 {
		m[rest[j].(int)] = int64(rest[j+1].(int))
	}
	return m
}
