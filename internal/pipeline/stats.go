package pipeline

import (
	"fmt"
	"sort"

	"github.com/theirongolddev/wrapped/internal/model"
)

// Distribution computes the transaction-size distribution over absolute
// amounts (minor units). Edges are ascending histogram bucket lower
// bounds; the final bucket is open-ended. Percentages are stored
// unrounded — rounding happens at presentation time.
func Distribution(amounts []int64, edges []int64) model.SizeDistribution {
	dist := model.SizeDistribution{
		Buckets: makeBuckets(edges),
	}
	if len(amounts) == 0 {
		return dist
	}

	sorted := make([]int64, len(amounts))
	copy(sorted, amounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	dist.Median = median(sorted)

	for _, a := range sorted {
		idx := bucketIndex(dist.Buckets, a)
		if idx >= 0 {
			dist.Buckets[idx].Count++
		}
	}

	total := float64(len(sorted))
	for i := range dist.Buckets {
		dist.Buckets[i].Percent = float64(dist.Buckets[i].Count) / total * 100
	}

	// Fullest bucket; ties broken by the lowest range's lower bound, which
	// the ascending scan gives us for free.
	best := 0
	for i, b := range dist.Buckets {
		if b.Count > dist.Buckets[best].Count {
			best = i
		}
	}
	if dist.Buckets[best].Count > 0 {
		dist.MostCommonRange = dist.Buckets[best].Label
		dist.Mode = bucketMidpoint(dist.Buckets[best], sorted[len(sorted)-1])
	}

	return dist
}

// median is the standard order statistic on a sorted slice: the middle
// value, or the average of the two middle values for even lengths.
func median(sorted []int64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

func makeBuckets(edges []int64) []model.HistogramBucket {
	buckets := make([]model.HistogramBucket, len(edges))
	for i, lo := range edges {
		b := model.HistogramBucket{Lo: lo}
		if i+1 < len(edges) {
			b.Hi = edges[i+1]
			b.Label = fmt.Sprintf("%d–%d", lo/100, b.Hi/100)
		} else {
			b.Open = true
			b.Label = fmt.Sprintf("%d+", lo/100)
		}
		buckets[i] = b
	}
	return buckets
}

func bucketIndex(buckets []model.HistogramBucket, amount int64) int {
	for i, b := range buckets {
		if amount < b.Lo {
			return i - 1
		}
		if b.Open || amount < b.Hi {
			return i
		}
	}
	return len(buckets) - 1
}

// bucketMidpoint estimates the mode from a bucket. The open-ended top
// bucket has no upper edge, so the largest observed amount stands in.
func bucketMidpoint(b model.HistogramBucket, maxObserved int64) float64 {
	hi := b.Hi
	if b.Open {
		hi = maxObserved
		if hi < b.Lo {
			hi = b.Lo
		}
	}
	return float64(b.Lo) + float64(hi-b.Lo)/2
}

// RankKey selects the ranking metric for top-N queries.
type RankKey int

const (
	ByAmount RankKey = iota
	ByCount
)

// TopPayees aggregates included, non-transfer outflow transactions by
// payee and returns at most n entries ranked by the requested key,
// descending. Ties break by ascending name for determinism.
func TopPayees(txns []model.Normalized, key RankKey, n int) []model.PayeeSummary {
	byPayee := make(map[string]*model.PayeeSummary)

	for _, t := range txns {
		if !t.IncludeInTotals || t.IsTransfer || t.Amount >= 0 {
			continue
		}
		id := t.PayeeID
		if id == "" {
			id = t.PayeeName
		}
		if id == "" {
			continue
		}

		ps, ok := byPayee[id]
		if !ok {
			name := t.PayeeName
			if name == "" {
				name = id
			}
			ps = &model.PayeeSummary{ID: id, Name: name}
			byPayee[id] = ps
		}
		ps.Amount += -t.Amount
		ps.TransactionCount++
	}

	payees := make([]model.PayeeSummary, 0, len(byPayee))
	for _, ps := range byPayee {
		payees = append(payees, *ps)
	}

	sort.Slice(payees, func(i, j int) bool {
		switch key {
		case ByCount:
			if payees[i].TransactionCount != payees[j].TransactionCount {
				return payees[i].TransactionCount > payees[j].TransactionCount
			}
		default:
			if payees[i].Amount != payees[j].Amount {
				return payees[i].Amount > payees[j].Amount
			}
		}
		return payees[i].Name < payees[j].Name
	})

	if len(payees) > n {
		payees = payees[:n]
	}
	return payees
}

// OutflowAmounts collects the absolute amounts of included, non-transfer
// outflow transactions — the population the size distribution describes.
func OutflowAmounts(txns []model.Normalized) []int64 {
	var amounts []int64
	for _, t := range txns {
		if !t.IncludeInTotals || t.IsTransfer || t.Amount >= 0 {
			continue
		}
		amounts = append(amounts, -t.Amount)
	}
	return amounts
}
