// Package config holds package-level constants and the loaded project
// options (internal/ext/config.go's funxy.yaml loader is the model:
// a small yaml.v3-backed struct, not a general-purpose config
// framework).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options holds one checking run's project settings. Verbose
// corresponds to spec.md §6's type_expr(node, verbose) toggle and
// StrictPartiality names the documented Comparable/Ordered gap
// (internal/check/operators.go); both are loaded but not read by the
// checker or the CLI. Color decides whether CLI output is colorized
// (cmd/lumenc defaults this from isatty, a loaded file can still force
// it either way).
type Options struct {
	Verbose          bool   `yaml:"verbose"`
	StrictPartiality bool   `yaml:"strict_partiality"`
	Color            *bool  `yaml:"color,omitempty"`
	CacheDir         string `yaml:"cache_dir,omitempty"`
}

// Default returns the zero-configured options a run uses when no
// lumenc.yaml is present.
func Default() *Options {
	return &Options{CacheDir: ".lumenc-cache"}
}

// Load reads and parses a lumenc.yaml project file.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return opts, nil
}
