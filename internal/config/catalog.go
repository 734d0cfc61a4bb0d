package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/QTest-hq/autoprio/internal/scoring"
)

// CatalogConfig represents a .autoprio.yaml file describing a custom
// factor catalog. Teams with a different framework mix swap factors and
// weights here instead of patching the binary.
type CatalogConfig struct {
	Version string         `yaml:"version"`
	Factors []FactorConfig `yaml:"factors"`
}

// FactorConfig is one factor definition in the file.
type FactorConfig struct {
	Key     string         `yaml:"key"`
	Name    string         `yaml:"name"`
	Weight  int            `yaml:"weight"`
	Options map[int]string `yaml:"options,omitempty"`
}

// LoadCatalog loads a catalog from the given file, or the default catalog
// when path is empty or no file exists at it.
func LoadCatalog(path string) (*scoring.Catalog, error) {
	if path == "" {
		return scoring.DefaultCatalog(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return scoring.DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cfg CatalogConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return cfg.Build()
}

// FindCatalog looks for a .autoprio.yaml (or .autoprio.yml) in dir and
// returns its path, or "" when neither exists.
func FindCatalog(dir string) string {
	for _, name := range []string{".autoprio.yaml", ".autoprio.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Build validates the file contents and constructs the catalog.
func (c *CatalogConfig) Build() (*scoring.Catalog, error) {
	if len(c.Factors) == 0 {
		return nil, fmt.Errorf("catalog file defines no factors")
	}

	factors := make([]scoring.Factor, 0, len(c.Factors))
	options := make(map[scoring.FactorKey]map[int]string, len(c.Factors))
	seen := make(map[string]struct{}, len(c.Factors))
	weighted := false

	for _, f := range c.Factors {
		if f.Key == "" {
			return nil, fmt.Errorf("catalog factor %q has no key", f.Name)
		}
		if _, dup := seen[f.Key]; dup {
			return nil, fmt.Errorf("duplicate catalog factor %q", f.Key)
		}
		seen[f.Key] = struct{}{}
		if f.Weight < 0 {
			return nil, fmt.Errorf("catalog factor %q has negative weight %d", f.Key, f.Weight)
		}

		key := scoring.FactorKey(f.Key)
		if f.Weight > 0 && key != scoring.FactorCanBeAutomated {
			weighted = true
		}

		name := f.Name
		if name == "" {
			name = f.Key
		}
		factors = append(factors, scoring.Factor{Key: key, Name: name, Weight: f.Weight})
		if len(f.Options) > 0 {
			options[key] = f.Options
		}
	}

	// A catalog with a zero score ceiling cannot normalize anything;
	// reject it at construction rather than at scoring time.
	if !weighted {
		return nil, fmt.Errorf("catalog has no weighted factors")
	}

	return scoring.NewCatalog(factors, options, nil), nil
}
