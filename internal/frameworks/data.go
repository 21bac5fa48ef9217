package frameworks

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// DatasetSize is the number of records in the baseline dataset.
const DatasetSize = 5

//go:embed data/frameworks.yaml
var datasetYAML []byte

// Dataset is the versioned list of frameworks inserted into an empty table.
type Dataset struct {
	Version    int            `yaml:"version"`
	Frameworks []DatasetEntry `yaml:"frameworks"`
}

type DatasetEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Visible     bool   `yaml:"visible"`
}

// ParseDataset decodes and validates a YAML dataset.
func ParseDataset(b []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(b, &ds); err != nil {
		return Dataset{}, fmt.Errorf("failed to parse frameworks dataset: %w", err)
	}
	if err := ds.validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// LoadDataset returns the embedded baseline dataset.
func LoadDataset() (Dataset, error) {
	return ParseDataset(datasetYAML)
}

func mustLoadDataset() Dataset {
	ds, err := LoadDataset()
	if err != nil {
		panic(err)
	}
	return ds
}

func (ds Dataset) validate() error {
	if ds.Version <= 0 {
		return errors.New("frameworks dataset: version must be positive")
	}
	if len(ds.Frameworks) != DatasetSize {
		return fmt.Errorf("frameworks dataset: expected %d entries, got %d", DatasetSize, len(ds.Frameworks))
	}

	seen := make(map[string]struct{}, len(ds.Frameworks))
	for i, e := range ds.Frameworks {
		name := strings.TrimSpace(e.Name)
		if name == "" || strings.TrimSpace(e.Version) == "" {
			return fmt.Errorf("frameworks dataset: entry %d is missing name or version", i)
		}
		if !e.Visible {
			return fmt.Errorf("frameworks dataset: %q must be visible", name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("frameworks dataset: duplicate name %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Records returns fresh Framework values for insertion. IDs are left empty
// and assigned on create.
func (ds Dataset) Records() []Framework {
	out := make([]Framework, 0, len(ds.Frameworks))
	for _, e := range ds.Frameworks {
		out = append(out, Framework{
			Name:        e.Name,
			Description: e.Description,
			Version:     e.Version,
			Visible:     e.Visible,
		})
	}
	return out
}
