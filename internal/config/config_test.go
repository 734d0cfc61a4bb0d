package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QTest-hq/autoprio/internal/scoring"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("AUTOPRIO_CATALOG", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Empty(t, cfg.CatalogPath)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ENV", "production")
	t.Setenv("AUTOPRIO_CATALOG", "/tmp/catalog.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/tmp/catalog.yaml", cfg.CatalogPath)
}

func TestLoad_BadPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

const catalogYAML = `version: "1.0"
factors:
  - key: can_be_automated
    name: Can it be Automated
    weight: 0
    options:
      1: "No"
      3: "Maybe"
      5: "Yes"
  - key: regression_frequency
    name: Regression Frequency
    weight: 4
    options:
      1: Semi-annual
      3: Quarterly
      5: Always
  - key: flakiness
    name: Flakiness When Run Manually
    weight: 2
`

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".autoprio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))

	cat, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, 5*4+5*2, cat.MaxRawScore())

	f, ok := cat.Factor("flakiness")
	require.True(t, ok)
	assert.Equal(t, 2, f.Weight)
	assert.Equal(t, "Always", cat.OptionLabel(scoring.FactorRegressionFrequency, 5))
}

func TestLoadCatalog_DefaultWhenMissing(t *testing.T) {
	cat, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, scoring.DefaultCatalog().MaxRawScore(), cat.MaxRawScore())

	cat, err = LoadCatalog(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8, cat.Len())
}

func TestCatalogConfig_Build_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  CatalogConfig
	}{
		{"no factors", CatalogConfig{}},
		{"missing key", CatalogConfig{Factors: []FactorConfig{{Name: "X", Weight: 1}}}},
		{"duplicate key", CatalogConfig{Factors: []FactorConfig{
			{Key: "a", Weight: 1}, {Key: "a", Weight: 2},
		}}},
		{"negative weight", CatalogConfig{Factors: []FactorConfig{{Key: "a", Weight: -1}}}},
		{"zero ceiling", CatalogConfig{Factors: []FactorConfig{
			{Key: "can_be_automated", Weight: 0},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Build()
			assert.Error(t, err)
		})
	}
}

func TestFindCatalog(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, FindCatalog(dir))

	path := filepath.Join(dir, ".autoprio.yml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\n"), 0o644))
	assert.Equal(t, path, FindCatalog(dir))
}
