package pipeline

import (
	"fmt"
	"math"
	"time"

	"github.com/theirongolddev/wrapped/internal/model"
)

// avgDaysPerMonth converts the daily savings rate into a monthly one for
// the months-until-zero solve.
const avgDaysPerMonth = 365.0 / 12.0

// Project extrapolates future savings from the actual year's buckets. The
// daily net rate is averaged over active days (days with any activity),
// not calendar days. The projected monthly curve is seeded from the last
// actual cumulative value so the two series join continuously at the year
// boundary.
func Project(bs *model.BucketSet, totalIncome, totalExpenses int64, milestones []model.MilestoneSpec) model.Projection {
	var proj model.Projection

	activeDays := 0
	for _, d := range bs.Days {
		if d.Count > 0 {
			activeDays++
		}
	}

	if activeDays > 0 {
		dailyIncome := float64(totalIncome) / float64(activeDays)
		dailyExpense := float64(totalExpenses) / float64(activeDays)
		proj.DailyNetRate = dailyIncome - dailyExpense
	}

	// Actual cumulative savings at each month-end.
	var cum float64
	proj.Actual = make([]model.ProjectionPoint, 0, 12)
	for i, m := range bs.Months {
		cum += float64(m.Amount)
		proj.Actual = append(proj.Actual, model.ProjectionPoint{
			Label:      monthLabel(bs.Year, time.Month(i+1)),
			Cumulative: cum,
		})
	}

	// Linear extrapolation through the following year.
	nextYear := bs.Year + 1
	proj.Projected = make([]model.ProjectionPoint, 0, 12)
	projected := cum
	for m := time.January; m <= time.December; m++ {
		projected += proj.DailyNetRate * float64(daysInMonth(nextYear, m))
		proj.Projected = append(proj.Projected, model.ProjectionPoint{
			Label:      monthLabel(nextYear, m),
			Cumulative: projected,
		})
	}
	proj.YearEndSavings = projected

	proj.MonthsUntilZero = MonthsUntilZero(cum, proj.DailyNetRate*avgDaysPerMonth)
	proj.Milestones = detectMilestones(bs, proj, milestones)

	return proj
}

// MonthsUntilZero solves cumulative + ratePerMonth*m = 0 for the smallest
// non-negative whole m. It is defined only when the rate is negative and
// savings are still positive; otherwise savings never reach zero under
// this extrapolation (or already crossed) and the result is nil.
func MonthsUntilZero(cumulative, ratePerMonth float64) *int {
	if ratePerMonth >= 0 || cumulative <= 0 {
		return nil
	}
	m := int(math.Ceil(cumulative / -ratePerMonth))
	if m < 0 {
		m = 0
	}
	return &m
}

// detectMilestones finds, for each threshold, the earliest point — actual
// day or projected month — where cumulative savings reached it. Thresholds
// never reached are omitted, not reported with a zero date. In the actual
// year crossings resolve to the exact calendar day; in the projected year
// only to the end of the month.
func detectMilestones(bs *model.BucketSet, proj model.Projection, specs []model.MilestoneSpec) []model.Milestone {
	var reached []model.Milestone

	for _, spec := range specs {
		var cum int64
		found := false

		for _, d := range bs.Days {
			cum += d.Amount
			if cum >= spec.Amount {
				reached = append(reached, model.Milestone{
					Label:       spec.Label,
					Threshold:   spec.Amount,
					DateReached: d.Date,
				})
				found = true
				break
			}
		}
		if found {
			continue
		}

		for i, p := range proj.Projected {
			if p.Cumulative >= float64(spec.Amount) {
				m := time.Month(i + 1)
				reached = append(reached, model.Milestone{
					Label:     spec.Label,
					Threshold: spec.Amount,
					DateReached: time.Date(bs.Year+1, m, daysInMonth(bs.Year+1, m),
						0, 0, 0, 0, time.UTC),
					Projected: true,
				})
				break
			}
		}
	}

	return reached
}

func monthLabel(year int, m time.Month) string {
	return fmt.Sprintf("%s %d", m.String()[:3], year)
}
