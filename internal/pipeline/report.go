package pipeline

import (
	"fmt"
	"os"

	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"gopkg.in/yaml.v3"
)

// FileReport is one file's outcome, the row RunFiles collects per
// Context.
type FileReport struct {
	Path        string                  `yaml:"path"`
	Diagnostics []diagnostics.Diagnostic `yaml:"diagnostics,omitempty"`
	Err         string                  `yaml:"error,omitempty"`
	Cached      bool                    `yaml:"cached,omitempty"`
}

// Report is a whole run's outcome across every file RunFiles checked,
// the shape `lumenc check -history=<path>` persists (SPEC_FULL.md §3.4).
type Report struct {
	Files []FileReport `yaml:"files"`
}

// HasFatal reports whether any file in the run recorded a Fatal
// diagnostic or an outright processing error.
func (r *Report) HasFatal() bool {
	for _, f := range r.Files {
		if f.Err != "" {
			return true
		}
		for _, d := range f.Diagnostics {
			if d.Severity == diagnostics.Fatal {
				return true
			}
		}
	}
	return false
}

// WriteYAML persists the report to path in the history format
// LoadReport reads back.
func (r *Report) WriteYAML(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("pipeline: marshalling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("pipeline: writing %s: %w", path, err)
	}
	return nil
}

// LoadReport reads back a previously written history file.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("pipeline: parsing %s: %w", path, err)
	}
	return &r, nil
}
