package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
)

// SeverityModel holds the parameters of one severity distribution
// family. The fields are unexported and set only through the family
// constructors, so a lognormal model cannot carry Pareto parameters or
// vice versa.
type SeverityModel struct {
	family types.SeverityFamily

	// lognormal
	mu    float64
	sigma float64

	// pareto
	scale float64
	shape float64
}

// NewLognormalSeverity creates a lognormal severity model parameterized
// by log-mean mu and log-standard-deviation sigma.
func NewLognormalSeverity(mu, sigma float64) (SeverityModel, error) {
	if sigma <= 0 {
		return SeverityModel{}, goerr.New("lognormal sigma must be positive",
			goerr.V("sigma", sigma),
			goerr.T(ErrTagConfiguration))
	}
	return SeverityModel{
		family: types.SeverityLognormal,
		mu:     mu,
		sigma:  sigma,
	}, nil
}

// NewParetoSeverity creates a Pareto severity model parameterized by
// scale b (minimum loss magnitude) and tail shape alpha.
func NewParetoSeverity(scale, shape float64) (SeverityModel, error) {
	if scale <= 0 {
		return SeverityModel{}, goerr.New("pareto scale must be positive",
			goerr.V("scale", scale),
			goerr.T(ErrTagConfiguration))
	}
	if shape <= 0 {
		return SeverityModel{}, goerr.New("pareto shape must be positive",
			goerr.V("shape", shape),
			goerr.T(ErrTagConfiguration))
	}
	return SeverityModel{
		family: types.SeverityPareto,
		scale:  scale,
		shape:  shape,
	}, nil
}

// Family returns the distribution family of the model
func (s SeverityModel) Family() types.SeverityFamily {
	return s.family
}

// Lognormal returns the (mu, sigma) parameters. The second return value
// reports whether the model is of the lognormal family.
func (s SeverityModel) Lognormal() (mu, sigma float64, ok bool) {
	if s.family != types.SeverityLognormal {
		return 0, 0, false
	}
	return s.mu, s.sigma, true
}

// Pareto returns the (scale, shape) parameters. The second return value
// reports whether the model is of the Pareto family.
func (s SeverityModel) Pareto() (scale, shape float64, ok bool) {
	if s.family != types.SeverityPareto {
		return 0, 0, false
	}
	return s.scale, s.shape, true
}

// Validate validates the severity model
func (s SeverityModel) Validate() error {
	switch s.family {
	case types.SeverityLognormal:
		if s.sigma <= 0 {
			return goerr.New("lognormal sigma must be positive",
				goerr.V("sigma", s.sigma),
				goerr.T(ErrTagConfiguration))
		}
	case types.SeverityPareto:
		if s.scale <= 0 || s.shape <= 0 {
			return goerr.New("pareto scale and shape must be positive",
				goerr.V("scale", s.scale),
				goerr.V("shape", s.shape),
				goerr.T(ErrTagConfiguration))
		}
	default:
		return goerr.New("unknown severity family",
			goerr.V("family", s.family),
			goerr.T(ErrTagConfiguration))
	}
	return nil
}

// LogValue returns structured log value
func (s SeverityModel) LogValue() slog.Value {
	switch s.family {
	case types.SeverityLognormal:
		return slog.GroupValue(
			slog.String("family", s.family.String()),
			slog.Float64("mu", s.mu),
			slog.Float64("sigma", s.sigma),
		)
	case types.SeverityPareto:
		return slog.GroupValue(
			slog.String("family", s.family.String()),
			slog.Float64("scale", s.scale),
			slog.Float64("shape", s.shape),
		)
	}
	return slog.GroupValue(slog.String("family", s.family.String()))
}
