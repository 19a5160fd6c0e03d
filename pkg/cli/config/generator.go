package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/model"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
	"github.com/opsrisk-lab/lossfolio/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Generator holds synthetic generation configuration
type Generator struct {
	Periods  int64
	Lambda   float64
	Severity string
	Mu       float64
	Sigma    float64
	Scale    float64
	Shape    float64
	Start    string
	Seed     uint64
}

// Flags returns CLI flags for Generator configuration
func (g *Generator) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "periods",
			Usage:       "Number of monthly periods to simulate",
			Category:    "Generation",
			Value:       36,
			Sources:     cli.EnvVars("LOSSFOLIO_PERIODS"),
			Destination: &g.Periods,
		},
		&cli.FloatFlag{
			Name:        "lambda",
			Usage:       "Mean event count per period (Poisson)",
			Category:    "Generation",
			Value:       5,
			Sources:     cli.EnvVars("LOSSFOLIO_LAMBDA"),
			Destination: &g.Lambda,
		},
		&cli.StringFlag{
			Name:        "severity",
			Usage:       "Severity distribution family (lognormal, pareto)",
			Category:    "Generation",
			Value:       "lognormal",
			Sources:     cli.EnvVars("LOSSFOLIO_SEVERITY"),
			Destination: &g.Severity,
		},
		&cli.FloatFlag{
			Name:        "mu",
			Usage:       "Lognormal log-mean",
			Category:    "Generation",
			Value:       10,
			Destination: &g.Mu,
		},
		&cli.FloatFlag{
			Name:        "sigma",
			Usage:       "Lognormal log-standard-deviation",
			Category:    "Generation",
			Value:       1,
			Destination: &g.Sigma,
		},
		&cli.FloatFlag{
			Name:        "scale",
			Usage:       "Pareto scale (minimum loss magnitude)",
			Category:    "Generation",
			Value:       1000,
			Destination: &g.Scale,
		},
		&cli.FloatFlag{
			Name:        "shape",
			Usage:       "Pareto tail shape alpha",
			Category:    "Generation",
			Value:       2.5,
			Destination: &g.Shape,
		},
		&cli.StringFlag{
			Name:        "start",
			Usage:       "Horizon start date (YYYY-MM-DD, default: Jan 1 of current year)",
			Category:    "Generation",
			Sources:     cli.EnvVars("LOSSFOLIO_START"),
			Destination: &g.Start,
		},
		&cli.Uint64Flag{
			Name:        "seed",
			Usage:       "RNG seed for reproducible generation (0: derive from clock)",
			Category:    "Generation",
			Destination: &g.Seed,
		},
	}
}

// Configure builds the generation config. The severity family selects
// which parameter flags are honored; setting a parameter of the
// inactive family is a configuration error.
func (g *Generator) Configure(c *cli.Command, taxonomy *model.Taxonomy) (*usecase.GenerateConfig, error) {
	var severity model.SeverityModel
	var err error

	switch types.SeverityFamily(g.Severity) {
	case types.SeverityLognormal:
		if c.IsSet("scale") || c.IsSet("shape") {
			return nil, goerr.New("scale/shape are Pareto parameters, not valid for lognormal severity",
				goerr.T(model.ErrTagConfiguration))
		}
		severity, err = model.NewLognormalSeverity(g.Mu, g.Sigma)
	case types.SeverityPareto:
		if c.IsSet("mu") || c.IsSet("sigma") {
			return nil, goerr.New("mu/sigma are lognormal parameters, not valid for pareto severity",
				goerr.T(model.ErrTagConfiguration))
		}
		severity, err = model.NewParetoSeverity(g.Scale, g.Shape)
	default:
		return nil, goerr.New("unknown severity family",
			goerr.V("severity", g.Severity),
			goerr.T(model.ErrTagConfiguration))
	}
	if err != nil {
		return nil, err
	}

	start := time.Date(time.Now().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	if g.Start != "" {
		start, err = time.Parse("2006-01-02", g.Start)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid start date",
				goerr.V("start", g.Start),
				goerr.T(model.ErrTagConfiguration))
		}
	}

	seed := g.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &usecase.GenerateConfig{
		NumPeriods:      int(g.Periods),
		FrequencyLambda: g.Lambda,
		Severity:        severity,
		Start:           start,
		Seed:            seed,
		Taxonomy:        taxonomy,
	}, nil
}
