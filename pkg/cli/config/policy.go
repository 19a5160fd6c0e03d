package config

import (
	"log/slog"

	"github.com/opsrisk-lab/lossfolio/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Policy holds excess-of-loss policy configuration
type Policy struct {
	Deductible float64
	Cover      float64
}

// Flags returns CLI flags for Policy configuration
func (p *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{
			Name:        "deductible",
			Usage:       "Per-event deductible (threshold below which nothing is recovered)",
			Category:    "Insurance",
			Required:    true,
			Sources:     cli.EnvVars("LOSSFOLIO_DEDUCTIBLE"),
			Destination: &p.Deductible,
		},
		&cli.FloatFlag{
			Name:        "cover",
			Usage:       "Per-event cover (maximum payout above the deductible)",
			Category:    "Insurance",
			Required:    true,
			Sources:     cli.EnvVars("LOSSFOLIO_COVER"),
			Destination: &p.Cover,
		},
	}
}

// Configure builds and validates the domain policy
func (p *Policy) Configure() (model.Policy, error) {
	policy := model.Policy{
		Deductible: p.Deductible,
		Cover:      p.Cover,
	}
	if err := policy.Validate(); err != nil {
		return model.Policy{}, err
	}
	return policy, nil
}

// LogValue returns structured log value
func (p Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("deductible", p.Deductible),
		slog.Float64("cover", p.Cover),
	)
}
