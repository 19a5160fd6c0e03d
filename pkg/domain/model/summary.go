package model

import (
	"log/slog"
	"time"

	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
)

// AggregateSummary holds the three aggregate scalars produced by the
// mitigation calculator. Gross = Insured + Net always holds exactly.
type AggregateSummary struct {
	Gross   float64
	Insured float64
	Net     float64
}

// LogValue returns structured log value
func (s AggregateSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("gross", s.Gross),
		slog.Float64("insured", s.Insured),
		slog.Float64("net", s.Net),
	)
}

// BucketRow is one row of a time-bucketed aggregation view
type BucketRow struct {
	Start   time.Time
	Count   int
	Gross   float64
	Insured float64
	Net     float64
}

// CategoryRow is one row of a per-category aggregation view
type CategoryRow struct {
	Category types.RiskCategory
	Count    int
	Gross    float64
	Insured  float64
	Net      float64
}
