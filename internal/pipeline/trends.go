package pipeline

import (
	"sort"

	"github.com/theirongolddev/wrapped/internal/model"
)

// Trends builds each category's 12-month spending series for the target
// year. Series store net outflow (outflows positive) so that "growth"
// means spending grew. Only transactions flagged IncludeInCategories
// contribute; uncategorized transactions are skipped. The result is
// ordered by category name for determinism.
func Trends(txns []model.Normalized, year int) []model.CategoryTrend {
	byCategory := make(map[string]*model.CategoryTrend)

	for _, t := range txns {
		if !t.IncludeInCategories || t.CategoryID == "" {
			continue
		}
		if t.Date.Year() != year {
			continue
		}

		ct, ok := byCategory[t.CategoryID]
		if !ok {
			name := t.CategoryName
			if name == "" {
				name = t.CategoryID
			}
			ct = &model.CategoryTrend{CategoryID: t.CategoryID, CategoryName: name}
			byCategory[t.CategoryID] = ct
		}
		ct.Monthly[int(t.Date.Month())-1] += -t.Amount
	}

	trends := make([]model.CategoryTrend, 0, len(byCategory))
	for _, ct := range byCategory {
		trends = append(trends, *ct)
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].CategoryName != trends[j].CategoryName {
			return trends[i].CategoryName < trends[j].CategoryName
		}
		return trends[i].CategoryID < trends[j].CategoryID
	})

	return trends
}

// GrowthRanking derives growth and decline rankings from category trends.
// Change is measured between the first and last months with non-zero
// amounts — a category inactive in January still reports growth from its
// first active month. Both lists are the same ranking, ordered by absolute
// total change descending (ties by name), split by the sign of the change;
// categories with no activity or no net change appear in neither.
func GrowthRanking(trends []model.CategoryTrend) (growth, decline []model.CategoryGrowth) {
	var all []model.CategoryGrowth

	for _, ct := range trends {
		first, last, ok := activeSpan(ct.Monthly)
		if !ok {
			continue
		}

		g := model.CategoryGrowth{
			CategoryID:       ct.CategoryID,
			CategoryName:     ct.CategoryName,
			FirstMonthAmount: ct.Monthly[first],
			LastMonthAmount:  ct.Monthly[last],
		}
		g.TotalChange = g.LastMonthAmount - g.FirstMonthAmount

		// The first active month is non-zero by construction, but a zero
		// baseline must map to the "new category" sentinel, never to a
		// division error.
		if g.FirstMonthAmount != 0 {
			g.PercentChange = model.FinitePercent(
				float64(g.TotalChange) / abs64f(g.FirstMonthAmount) * 100)
		} else {
			g.PercentChange = model.UndefinedPercent()
		}

		all = append(all, g)
	}

	sort.Slice(all, func(i, j int) bool {
		ai, aj := absChange(all[i]), absChange(all[j])
		if ai != aj {
			return ai > aj
		}
		return all[i].CategoryName < all[j].CategoryName
	})

	for _, g := range all {
		switch {
		case g.TotalChange > 0:
			growth = append(growth, g)
		case g.TotalChange < 0:
			decline = append(decline, g)
		}
	}
	return growth, decline
}

// activeSpan finds the first and last non-zero months of a series.
func activeSpan(monthly [12]int64) (first, last int, ok bool) {
	first, last = -1, -1
	for i, v := range monthly {
		if v == 0 {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}
	return first, last, first != -1
}

func absChange(g model.CategoryGrowth) int64 {
	if g.TotalChange < 0 {
		return -g.TotalChange
	}
	return g.TotalChange
}

func abs64f(n int64) float64 {
	if n < 0 {
		n = -n
	}
	return float64(n)
}
