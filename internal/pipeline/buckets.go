package pipeline

import (
	"fmt"
	"time"

	"github.com/theirongolddev/wrapped/internal/model"
)

var quarterLabels = [4]string{"Q1", "Q2", "Q3", "Q4"}

// Bucket folds normalized transactions into day, month, quarter, and
// weekday buckets for the target year. Every calendar unit is
// pre-initialized to zero before folding so consumers always get a
// complete, gap-free axis — an empty transaction list produces all-zero
// buckets, never an error.
//
// Counts accumulate unconditionally; amounts only for transactions with
// IncludeInTotals set.
func Bucket(txns []model.Normalized, year int) *model.BucketSet {
	bs := &model.BucketSet{Year: year}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	bs.Days = make([]model.DayBucket, daysInYear(year))
	for i := range bs.Days {
		bs.Days[i].Date = start.AddDate(0, 0, i)
	}
	for i := range bs.Months {
		bs.Months[i].Label = time.Month(i + 1).String()
	}
	for i := range bs.Quarters {
		bs.Quarters[i].Label = quarterLabels[i]
	}
	for i := range bs.Weekdays {
		bs.Weekdays[i].Label = time.Weekday(i).String()
	}

	for _, t := range txns {
		day := t.Date.YearDay() - 1
		month := int(t.Date.Month()) - 1
		quarter := month / 3
		weekday := int(t.Date.Weekday()) // Sunday=0 by convention

		bs.Days[day].Count++
		bs.Months[month].Count++
		bs.Quarters[quarter].Count++
		bs.Weekdays[weekday].Count++

		if !t.IncludeInTotals {
			continue
		}

		var outflow int64
		if t.Amount < 0 {
			outflow = -t.Amount
		}

		bs.Days[day].Amount += t.Amount
		bs.Days[day].Outflow += outflow
		bs.Months[month].Amount += t.Amount
		bs.Months[month].Outflow += outflow
		bs.Quarters[quarter].Amount += t.Amount
		bs.Quarters[quarter].Outflow += outflow
		bs.Weekdays[weekday].Amount += t.Amount
		bs.Weekdays[weekday].Outflow += outflow
	}

	return bs
}

// CheckBucketTotals verifies that the day, month, and quarter rollups
// agree on every metric. A mismatch is a programming defect and aborts the
// build.
func CheckBucketTotals(bs *model.BucketSet) error {
	var dayCount, monthCount, quarterCount int
	var dayAmount, monthAmount, quarterAmount int64
	var dayOutflow, monthOutflow, quarterOutflow int64

	for _, d := range bs.Days {
		dayCount += d.Count
		dayAmount += d.Amount
		dayOutflow += d.Outflow
	}
	for _, m := range bs.Months {
		monthCount += m.Count
		monthAmount += m.Amount
		monthOutflow += m.Outflow
	}
	for _, q := range bs.Quarters {
		quarterCount += q.Count
		quarterAmount += q.Amount
		quarterOutflow += q.Outflow
	}

	if dayCount != monthCount || monthCount != quarterCount {
		return fmt.Errorf("%w: counts day=%d month=%d quarter=%d",
			ErrInconsistentBuckets, dayCount, monthCount, quarterCount)
	}
	if dayAmount != monthAmount || monthAmount != quarterAmount {
		return fmt.Errorf("%w: amounts day=%d month=%d quarter=%d",
			ErrInconsistentBuckets, dayAmount, monthAmount, quarterAmount)
	}
	if dayOutflow != monthOutflow || monthOutflow != quarterOutflow {
		return fmt.Errorf("%w: outflows day=%d month=%d quarter=%d",
			ErrInconsistentBuckets, dayOutflow, monthOutflow, quarterOutflow)
	}

	return nil
}

func daysInYear(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInMonth returns the calendar length of a month, leap years included.
func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
