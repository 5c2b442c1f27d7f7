package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/theirongolddev/wrapped/internal/model"
)

// BuildWrappedData runs the full pipeline: normalize, bucket, rank,
// project, assemble. The independent metric computations only read the
// normalizer's output and never share state, so they run concurrently.
//
// The build is deterministic: identical input and options produce a
// structurally identical record. It fails as a whole — ErrEmptyInput when
// nothing usable remains after normalization (unless AllowEmpty),
// ErrInconsistentBuckets when the rollup invariant breaks — rather than
// returning partial output.
func BuildWrappedData(txns []model.Transaction, opts Options, log zerolog.Logger) (*model.WrappedData, error) {
	opts = opts.withDefaults()

	nr := Normalize(txns, opts, log)
	if len(nr.Transactions) == 0 && !opts.AllowEmpty {
		return nil, fmt.Errorf("%w: year %d", ErrEmptyInput, opts.Year)
	}

	var (
		bs     *model.BucketSet
		dist   model.SizeDistribution
		payees []model.PayeeSummary
		trends []model.CategoryTrend
		growth []model.CategoryGrowth
		decline []model.CategoryGrowth
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		bs = Bucket(nr.Transactions, opts.Year)
		return CheckBucketTotals(bs)
	})
	g.Go(func() error {
		dist = Distribution(OutflowAmounts(nr.Transactions), opts.HistogramEdges)
		payees = TopPayees(nr.Transactions, ByAmount, opts.TopN)
		return nil
	})
	g.Go(func() error {
		trends = Trends(nr.Transactions, opts.Year)
		growth, decline = GrowthRanking(trends)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var totalIncome, totalExpenses int64
	for _, t := range nr.Transactions {
		if !t.IncludeInTotals {
			continue
		}
		if t.Amount > 0 {
			totalIncome += t.Amount
		} else {
			totalExpenses += -t.Amount
		}
	}
	netSavings := totalIncome - totalExpenses

	savingsRate := 0.0
	if totalIncome > 0 {
		savingsRate = float64(netSavings) / float64(totalIncome)
	}

	proj := Project(bs, totalIncome, totalExpenses, opts.Milestones)

	return &model.WrappedData{
		Year:           opts.Year,
		TotalIncome:    totalIncome,
		TotalExpenses:  totalExpenses,
		NetSavings:     netSavings,
		SavingsRate:    savingsRate,
		Buckets:        *bs,
		TopPayees:      payees,
		Trends:         trends,
		Growth:         growth,
		Decline:        decline,
		Distribution:   dist,
		Projection:     proj,
		DroppedRecords: nr.Dropped,
	}, nil
}
