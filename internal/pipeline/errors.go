package pipeline

import "errors"

var (
	// ErrEmptyInput is returned when normalization yields zero usable
	// transactions and the caller did not request an empty-year report.
	ErrEmptyInput = errors.New("no usable transactions")

	// ErrInconsistentBuckets indicates the day/month/quarter sums
	// disagree. This is a programming defect, never silently corrected.
	ErrInconsistentBuckets = errors.New("inconsistent bucket totals")
)
