package model

import "time"

// DayBucket holds activity for a single calendar day of the target year.
type DayBucket struct {
	Date time.Time
	// Count is the number of transactions on this day, regardless of the
	// totals-inclusion flags.
	Count int
	// Amount is the signed net of included transactions. The sum of Amount
	// over all days equals the net total of all included transactions.
	Amount int64
	// Outflow is the absolute outflow of included transactions, the metric
	// a calendar heatmap renders.
	Outflow int64
}

// PeriodBucket is the day-bucket shape generalized to coarser units
// (month, quarter, day-of-week).
type PeriodBucket struct {
	Label   string
	Count   int
	Amount  int64
	Outflow int64
}

// BucketSet holds every time granularity for one target year. All slices
// are fixed-length, chronological, and zero-filled: consumers get a
// complete, gap-free axis even for units with no activity.
type BucketSet struct {
	Year int
	// Days covers Jan 1 through Dec 31 inclusive (365 or 366 entries).
	Days []DayBucket
	// Months covers January through December.
	Months [12]PeriodBucket
	// Quarters: Q1=Jan–Mar, Q2=Apr–Jun, Q3=Jul–Sep, Q4=Oct–Dec.
	Quarters [4]PeriodBucket
	// Weekdays are indexed Sunday=0 through Saturday=6.
	Weekdays [7]PeriodBucket
}
