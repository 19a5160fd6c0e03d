package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
)

// Taxonomy holds the categorical vocabularies used when generating and
// validating loss events.
type Taxonomy struct {
	RiskCategories []types.RiskCategory `yaml:"risk_categories"`
	RootCauses     []types.RootCause    `yaml:"root_causes"`
}

// DefaultTaxonomy returns the built-in Basel-II-style event categories
// and causal taxonomy.
func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{
		RiskCategories: []types.RiskCategory{
			"Internal Fraud",
			"External Fraud",
			"Employment Practices and Workplace Safety",
			"Clients, Products & Business Practices",
			"Damage to Physical Assets",
			"Business Disruption and System Failures",
			"Execution, Delivery & Process Management",
		},
		RootCauses: []types.RootCause{
			"People",
			"Process",
			"Systems",
			"External Events",
		},
	}
}

// Validate validates the taxonomy
func (t *Taxonomy) Validate() error {
	if len(t.RiskCategories) == 0 {
		return goerr.New("at least one risk category is required",
			goerr.T(ErrTagConfiguration))
	}
	if len(t.RootCauses) == 0 {
		return goerr.New("at least one root cause is required",
			goerr.T(ErrTagConfiguration))
	}

	seen := make(map[types.RiskCategory]bool)
	for _, c := range t.RiskCategories {
		if c == "" {
			return goerr.New("risk category must not be empty",
				goerr.T(ErrTagConfiguration))
		}
		if seen[c] {
			return goerr.New("duplicate risk category",
				goerr.V("category", c),
				goerr.T(ErrTagConfiguration))
		}
		seen[c] = true
	}

	seenCause := make(map[types.RootCause]bool)
	for _, c := range t.RootCauses {
		if c == "" {
			return goerr.New("root cause must not be empty",
				goerr.T(ErrTagConfiguration))
		}
		if seenCause[c] {
			return goerr.New("duplicate root cause",
				goerr.V("cause", c),
				goerr.T(ErrTagConfiguration))
		}
		seenCause[c] = true
	}

	return nil
}

// HasCategory checks if the given category is part of the taxonomy
func (t *Taxonomy) HasCategory(category types.RiskCategory) bool {
	for _, c := range t.RiskCategories {
		if c == category {
			return true
		}
	}
	return false
}

// HasRootCause checks if the given root cause is part of the taxonomy
func (t *Taxonomy) HasRootCause(cause types.RootCause) bool {
	for _, c := range t.RootCauses {
		if c == cause {
			return true
		}
	}
	return false
}
