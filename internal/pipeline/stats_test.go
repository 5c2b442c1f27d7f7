package pipeline

import (
	"reflect"
	"testing"
	"time"

	"github.com/theirongolddev/wrapped/internal/model"
)

var testEdges = []int64{0, 2_500, 5_000, 10_000}

func TestDistribution_Median(t *testing.T) {
	tests := []struct {
		name    string
		amounts []int64
		want    float64
	}{
		{"odd length", []int64{3000, 1000, 2000}, 2000},
		{"even length averages middles", []int64{4000, 1000, 3000, 2000}, 2500},
		{"single", []int64{750}, 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist := Distribution(tt.amounts, testEdges)
			if dist.Median != tt.want {
				t.Errorf("Median = %v, want %v", dist.Median, tt.want)
			}
		})
	}
}

func TestDistribution_OrderInvariant(t *testing.T) {
	a := Distribution([]int64{900, 3000, 3200, 12000, 3600}, testEdges)
	b := Distribution([]int64{3600, 900, 12000, 3200, 3000}, testEdges)
	if !reflect.DeepEqual(a, b) {
		t.Error("distribution depends on input order")
	}
}

func TestDistribution_ModeFromFullestBucket(t *testing.T) {
	// Three amounts in [25,50), one below, one in the open bucket.
	dist := Distribution([]int64{900, 3000, 3200, 3600, 12000}, testEdges)

	if dist.MostCommonRange != "25–50" {
		t.Errorf("MostCommonRange = %q, want 25–50", dist.MostCommonRange)
	}
	if dist.Mode != 3750 { // midpoint of [2500, 5000)
		t.Errorf("Mode = %v, want 3750", dist.Mode)
	}

	counts := []int{1, 3, 0, 1}
	for i, want := range counts {
		if dist.Buckets[i].Count != want {
			t.Errorf("bucket %d Count = %d, want %d", i, dist.Buckets[i].Count, want)
		}
	}
	if got := dist.Buckets[1].Percent; got != 60 {
		t.Errorf("bucket 1 Percent = %v, want 60", got)
	}
}

func TestDistribution_TieBreaksToLowestRange(t *testing.T) {
	dist := Distribution([]int64{1000, 3000}, testEdges)
	if dist.MostCommonRange != "0–25" {
		t.Errorf("MostCommonRange = %q, want 0–25 (lowest tied range)", dist.MostCommonRange)
	}
}

func TestDistribution_OpenBucketMidpoint(t *testing.T) {
	// The open bucket has no upper edge; the largest observed amount
	// stands in.
	dist := Distribution([]int64{12_000, 20_000}, testEdges)
	if dist.MostCommonRange != "100+" {
		t.Fatalf("MostCommonRange = %q, want 100+", dist.MostCommonRange)
	}
	if dist.Mode != 15_000 { // (10000 + 20000) / 2
		t.Errorf("Mode = %v, want 15000", dist.Mode)
	}
}

func TestDistribution_Empty(t *testing.T) {
	dist := Distribution(nil, testEdges)
	if dist.Median != 0 || dist.Mode != 0 || dist.MostCommonRange != "" {
		t.Errorf("empty distribution = %+v, want zeroes", dist)
	}
	if len(dist.Buckets) != len(testEdges) {
		t.Errorf("buckets = %d, want %d (axis present even when empty)", len(dist.Buckets), len(testEdges))
	}
}

func expense(dateDay int, payeeID, payeeName string, amount int64) model.Normalized {
	return model.Normalized{
		Transaction: model.Transaction{
			Date:      day(2025, time.May, dateDay),
			Amount:    amount,
			PayeeID:   payeeID,
			PayeeName: payeeName,
		},
		IncludeInTotals: true,
	}
}

func TestTopPayees_RankingAndTies(t *testing.T) {
	txns := []model.Normalized{
		expense(1, "p1", "Grocer", -5000),
		expense(2, "p1", "Grocer", -3000),
		expense(3, "p2", "Cafe", -8000),
		expense(4, "p3", "Bakery", -8000),
	}

	got := TopPayees(txns, ByAmount, 10)

	// p2 and p3 tie with p1 on amount 8000; ties break by name.
	wantNames := []string{"Bakery", "Cafe", "Grocer"}
	if len(got) != 3 {
		t.Fatalf("got %d payees, want 3", len(got))
	}
	for i, name := range wantNames {
		if got[i].Name != name {
			t.Errorf("rank %d = %q, want %q", i, got[i].Name, name)
		}
	}
	if got[2].Amount != 8000 || got[2].TransactionCount != 2 {
		t.Errorf("Grocer = {%d, %d}, want {8000, 2}", got[2].Amount, got[2].TransactionCount)
	}
}

func TestTopPayees_ByCount(t *testing.T) {
	txns := []model.Normalized{
		expense(1, "p1", "Grocer", -100),
		expense(2, "p1", "Grocer", -100),
		expense(3, "p2", "Cafe", -90000),
	}

	got := TopPayees(txns, ByCount, 10)
	if len(got) != 2 || got[0].Name != "Grocer" {
		t.Fatalf("ByCount top = %+v, want Grocer first", got)
	}
}

func TestTopPayees_FiltersAndCap(t *testing.T) {
	txns := []model.Normalized{
		expense(1, "p1", "Grocer", -5000),
		expense(2, "p2", "Cafe", -4000),
		expense(3, "p3", "Bakery", -3000),
		expense(4, "", "", -2000), // no payee at all
		{Transaction: model.Transaction{Date: day(2025, time.May, 5), Amount: 7000, PayeeID: "emp", PayeeName: "Employer"}, IncludeInTotals: true},
		{Transaction: model.Transaction{Date: day(2025, time.May, 6), Amount: -6000, PayeeID: "p9", PayeeName: "Savings", IsTransfer: true}, IncludeInTotals: true},
		{Transaction: model.Transaction{Date: day(2025, time.May, 7), Amount: -6000, PayeeID: "p8", PayeeName: "Hidden"}, IncludeInTotals: false},
	}

	got := TopPayees(txns, ByAmount, 2)
	if len(got) != 2 {
		t.Fatalf("got %d payees, want 2 (capped)", len(got))
	}
	for _, p := range got {
		switch p.Name {
		case "Employer", "Savings", "Hidden":
			t.Errorf("payee %q should have been filtered", p.Name)
		}
	}
}

func TestTopPayees_NameAsFallbackKey(t *testing.T) {
	txns := []model.Normalized{
		expense(1, "", "Corner Shop", -1000),
		expense(2, "", "Corner Shop", -2000),
	}

	got := TopPayees(txns, ByAmount, 10)
	if len(got) != 1 {
		t.Fatalf("got %d payees, want 1 (grouped by name)", len(got))
	}
	if got[0].Amount != 3000 || got[0].ID != "Corner Shop" {
		t.Errorf("got %+v, want amount 3000 keyed by name", got[0])
	}
}

func TestOutflowAmounts(t *testing.T) {
	txns := []model.Normalized{
		expense(1, "p1", "A", -1500),
		{Transaction: model.Transaction{Date: day(2025, time.May, 2), Amount: 2000}, IncludeInTotals: true},
		{Transaction: model.Transaction{Date: day(2025, time.May, 3), Amount: -900, IsTransfer: true}, IncludeInTotals: true},
		{Transaction: model.Transaction{Date: day(2025, time.May, 4), Amount: -800}, IncludeInTotals: false},
	}

	got := OutflowAmounts(txns)
	if !reflect.DeepEqual(got, []int64{1500}) {
		t.Errorf("OutflowAmounts = %v, want [1500]", got)
	}
}
