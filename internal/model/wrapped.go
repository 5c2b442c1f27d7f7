package model

import "time"

// CategoryTrend holds one category's spending across the twelve months of
// the target year. Monthly is indexed by month (0=January), zero-filled,
// and stores net outflow: outflows positive, inflows negative.
type CategoryTrend struct {
	CategoryID   string
	CategoryName string
	Monthly      [12]int64
}

// PercentChange is a tagged percentage so consumers cannot mistake an
// undefined rate ("new category") for a numeric zero.
type PercentChange struct {
	Defined bool
	// Value is the percentage (100 = +100%). Meaningless when !Defined.
	Value float64
}

// FinitePercent returns a defined percentage change.
func FinitePercent(v float64) PercentChange {
	return PercentChange{Defined: true, Value: v}
}

// UndefinedPercent marks growth from a zero baseline.
func UndefinedPercent() PercentChange {
	return PercentChange{}
}

// CategoryGrowth summarizes a category's change between its first and last
// active months of the year.
type CategoryGrowth struct {
	CategoryID       string
	CategoryName     string
	FirstMonthAmount int64
	LastMonthAmount  int64
	TotalChange      int64
	PercentChange    PercentChange
}

// PayeeSummary aggregates included, non-transfer outflows for one payee.
type PayeeSummary struct {
	// ID is the payee id when the ledger has one, else the payee name.
	ID               string
	Name             string
	Amount           int64 // absolute outflow
	TransactionCount int
}

// HistogramBucket is one range of the transaction-size histogram.
type HistogramBucket struct {
	Label string
	Lo    int64
	// Hi is the exclusive upper bound in minor units; Open marks the final
	// unbounded bucket, for which Hi is meaningless.
	Hi    int64
	Open  bool
	Count int
	// Percent is count/total*100, stored unrounded.
	Percent float64
}

// SizeDistribution describes how large the year's transactions were.
type SizeDistribution struct {
	// Median is the order-statistic median of the absolute amounts, in
	// minor units (fractional for even-length inputs).
	Median float64
	// Mode is estimated as the midpoint of the fullest histogram bucket;
	// amounts are continuous so a literal most-frequent value would be
	// noise.
	Mode            float64
	Buckets         []HistogramBucket
	MostCommonRange string
}

// ProjectionPoint is one month on the cumulative-savings curve, in minor
// units.
type ProjectionPoint struct {
	Label      string // e.g. "Jan 2026"
	Cumulative float64
}

// MilestoneSpec is a configured savings threshold to watch for.
type MilestoneSpec struct {
	Label  string
	Amount int64
}

// Milestone records the earliest point, actual or projected, where
// cumulative savings reached a threshold. Thresholds never reached are
// omitted from results entirely.
type Milestone struct {
	Label       string
	Threshold   int64
	DateReached time.Time
	// Projected is true when the crossing falls in the extrapolated year
	// rather than the actual one.
	Projected bool
}

// Projection holds the forward savings extrapolation.
type Projection struct {
	// DailyNetRate is average savings per active day, minor units.
	DailyNetRate float64
	// Actual is the cumulative savings at each month-end of the target
	// year. Projected continues it through the following year, seeded from
	// the last actual value so the two series join without discontinuity.
	Actual    []ProjectionPoint
	Projected []ProjectionPoint
	// YearEndSavings is the final projected cumulative value.
	YearEndSavings float64
	// MonthsUntilZero is how many months until savings hit zero under the
	// current rate; nil when the rate is non-negative or savings are
	// already non-positive.
	MonthsUntilZero *int
	Milestones      []Milestone
}

// WrappedData is the immutable year-in-review summary record. It is
// constructed exactly once by the assembler; presentation surfaces read
// fields off it and never recompute derived values.
type WrappedData struct {
	Year int

	TotalIncome   int64
	TotalExpenses int64
	NetSavings    int64
	// SavingsRate is NetSavings/TotalIncome in [0..1] terms (may be
	// negative); zero when there was no income.
	SavingsRate float64

	Buckets      BucketSet
	TopPayees    []PayeeSummary
	Trends       []CategoryTrend
	Growth       []CategoryGrowth
	Decline      []CategoryGrowth
	Distribution SizeDistribution
	Projection   Projection

	// DroppedRecords counts input records discarded during normalization.
	DroppedRecords int
}
