package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"adcheck/internal/batch"
	"adcheck/internal/domain"
)

// ManifestEntry names one extracted directive document. Label becomes the
// verdict column header; Path is resolved relative to the manifest file.
type ManifestEntry struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// Manifest is the YAML input of a compare run. Entry order fixes the
// column order of the results table.
type Manifest struct {
	Directives []ManifestEntry `yaml:"directives"`
}

// LoadManifest reads a manifest and the directive documents it points to.
func LoadManifest(path string) (*batch.DirectiveSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(manifest.Directives) == 0 {
		return nil, fmt.Errorf("manifest %s lists no directives", path)
	}

	baseDir := filepath.Dir(path)
	set := batch.NewDirectiveSet()
	for i, entry := range manifest.Directives {
		if entry.Label == "" {
			return nil, fmt.Errorf("manifest %s: directives[%d] has no label", path, i)
		}
		directive, err := loadDirective(resolvePath(baseDir, entry.Path))
		if err != nil {
			return nil, fmt.Errorf("directive %q: %w", entry.Label, err)
		}
		if err := set.Add(entry.Label, *directive); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
	}
	return set, nil
}

func loadDirective(path string) (*domain.Directive, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var directive domain.Directive
	if err := json.Unmarshal(raw, &directive); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if directive.ADNumber == "" {
		return nil, fmt.Errorf("%s: ad_number is required", path)
	}
	return &directive, nil
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
