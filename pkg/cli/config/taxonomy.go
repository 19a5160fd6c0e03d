package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Taxonomy holds the categorical vocabulary configuration
type Taxonomy struct {
	Path string
}

// Flags returns CLI flags for Taxonomy configuration
func (t *Taxonomy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "taxonomy",
			Usage:       "YAML file with risk categories and root causes (default: built-in Basel II taxonomy)",
			Category:    "Generation",
			Sources:     cli.EnvVars("LOSSFOLIO_TAXONOMY"),
			Destination: &t.Path,
		},
	}
}

// Configure loads the taxonomy from file, or returns the built-in
// default when no file is configured
func (t *Taxonomy) Configure() (*model.Taxonomy, error) {
	if t.Path == "" {
		return model.DefaultTaxonomy(), nil
	}
	return LoadTaxonomyFromFile(t.Path)
}

// LoadTaxonomyFromFile loads a taxonomy from a YAML file
func LoadTaxonomyFromFile(path string) (*model.Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "taxonomy file not found",
				goerr.V("path", path),
				goerr.T(model.ErrTagConfiguration))
		}
		return nil, goerr.Wrap(err, "failed to read taxonomy file",
			goerr.V("path", path))
	}

	var taxonomy model.Taxonomy
	if err := yaml.Unmarshal(data, &taxonomy); err != nil {
		return nil, goerr.Wrap(err, "failed to parse taxonomy YAML",
			goerr.V("path", path),
			goerr.T(model.ErrTagConfiguration))
	}

	if err := taxonomy.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid taxonomy",
			goerr.V("path", path))
	}

	return &taxonomy, nil
}
