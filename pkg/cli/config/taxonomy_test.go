package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opsrisk-lab/lossfolio/pkg/cli/config"
)

func TestLoadTaxonomyFromFile(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "taxonomy.yml")
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("valid taxonomy", func(t *testing.T) {
		path := write(t, `
risk_categories:
  - Internal Fraud
  - External Fraud
root_causes:
  - People
  - Process
`)
		taxonomy, err := config.LoadTaxonomyFromFile(path)
		gt.NoError(t, err)
		gt.Equal(t, len(taxonomy.RiskCategories), 2)
		gt.Equal(t, len(taxonomy.RootCauses), 2)
		gt.True(t, taxonomy.HasCategory("External Fraud"))
	})

	t.Run("error on missing file", func(t *testing.T) {
		_, err := config.LoadTaxonomyFromFile(filepath.Join(t.TempDir(), "absent.yml"))
		gt.Error(t, err)
	})

	t.Run("error on invalid YAML", func(t *testing.T) {
		path := write(t, "risk_categories: [unterminated")
		_, err := config.LoadTaxonomyFromFile(path)
		gt.Error(t, err)
	})

	t.Run("error on empty vocabulary", func(t *testing.T) {
		path := write(t, "risk_categories: []\nroot_causes: []\n")
		_, err := config.LoadTaxonomyFromFile(path)
		gt.Error(t, err)
	})
}

func TestTaxonomyConfigureDefault(t *testing.T) {
	var cfg config.Taxonomy
	taxonomy, err := cfg.Configure()
	gt.NoError(t, err)
	gt.NoError(t, taxonomy.Validate())
	gt.True(t, taxonomy.HasCategory("Execution, Delivery & Process Management"))
}
