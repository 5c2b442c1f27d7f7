package pipeline

import (
	"github.com/theirongolddev/wrapped/internal/config"
	"github.com/theirongolddev/wrapped/internal/model"
)

// DefaultTopN is the ranking length used when the caller doesn't ask for a
// specific one.
const DefaultTopN = 10

// Options holds the normalization policy switches and aggregation
// parameters for one build.
type Options struct {
	// Year is the target calendar year.
	Year int

	// IncludeOffBudget counts transactions on off-budget accounts.
	IncludeOffBudget bool
	// IncludeAllTransfers counts transfers between two on-budget accounts
	// as real money movement. Transfers crossing into or out of an
	// off-budget account always count.
	IncludeAllTransfers bool
	// IncludeIncomeInCategories lets income categories contribute to
	// category-level totals.
	IncludeIncomeInCategories bool
	// AllowEmpty suppresses ErrEmptyInput for intentionally empty years.
	AllowEmpty bool

	// HistogramEdges are ascending bucket lower bounds in minor units;
	// the final bucket is open-ended. Defaults to config's edges.
	HistogramEdges []int64
	// Milestones are ascending savings thresholds to detect.
	Milestones []model.MilestoneSpec
	// TopN caps ranking lengths (payees). Defaults to DefaultTopN.
	TopN int
}

// OptionsFromConfig derives build options from the loaded configuration.
func OptionsFromConfig(cfg config.Config) Options {
	opts := Options{
		Year:                      cfg.General.Year,
		IncludeOffBudget:          cfg.Options.IncludeOffBudget,
		IncludeAllTransfers:       cfg.Options.IncludeAllTransfers,
		IncludeIncomeInCategories: cfg.Options.IncludeIncomeInCategories,
		AllowEmpty:                cfg.Options.AllowEmpty,
		HistogramEdges:            append([]int64(nil), cfg.Histogram.Edges...),
	}
	for _, m := range cfg.Milestones {
		opts.Milestones = append(opts.Milestones, model.MilestoneSpec{Label: m.Label, Amount: m.Amount})
	}
	return opts
}

func (o Options) withDefaults() Options {
	if len(o.HistogramEdges) == 0 {
		o.HistogramEdges = append([]int64(nil), config.DefaultHistogramEdges...)
	}
	if o.TopN <= 0 {
		o.TopN = DefaultTopN
	}
	return o
}
