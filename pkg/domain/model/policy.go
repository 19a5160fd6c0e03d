package model

import (
	"log/slog"
	"math"

	"github.com/m-mizutani/goerr/v2"
)

// Policy is one excess-of-loss treaty applied uniformly to every event.
// Cover may be math.Inf(1) for an unlimited layer.
type Policy struct {
	Deductible float64
	Cover      float64
}

// Validate validates the policy terms
func (p Policy) Validate() error {
	if p.Deductible < 0 || math.IsNaN(p.Deductible) {
		return goerr.New("deductible must be non-negative",
			goerr.V("deductible", p.Deductible),
			goerr.T(ErrTagConfiguration))
	}
	if p.Cover < 0 || math.IsNaN(p.Cover) {
		return goerr.New("cover must be non-negative",
			goerr.V("cover", p.Cover),
			goerr.T(ErrTagConfiguration))
	}
	return nil
}

// Payout returns the insured portion of a loss of size x:
// min(max(x-d, 0), c). The function is non-decreasing in x and
// piecewise linear with breakpoints at d and d+c.
func (p Policy) Payout(x float64) float64 {
	excess := x - p.Deductible
	if excess <= 0 {
		return 0
	}
	if excess > p.Cover {
		return p.Cover
	}
	return excess
}

// LogValue returns structured log value
func (p Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("deductible", p.Deductible),
		slog.Float64("cover", p.Cover),
	)
}
