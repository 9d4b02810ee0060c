// Package template holds the requirements.txt templates a new project can be
// seeded from. The built-in variants are compiled into the binary at build
// time via //go:embed; an optional YAML overlay file can add or replace
// templates without rebuilding.
package template

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"pycargo/internal/logger"
)

// basicTemplate is a minimal set of general-purpose packages.
//
//go:embed templates/basic.txt
var basicTemplate string

// advancedTemplate extends basic with the usual development tooling.
//
//go:embed templates/advanced.txt
var advancedTemplate string

// dataScienceTemplate is the notebook/analysis stack.
//
//go:embed templates/datascience.txt
var dataScienceTemplate string

// Blank is the template identifier that produces an empty requirements.txt
// and skips dependency installation entirely.
const Blank = "blank"

// Store maps template identifiers to requirements.txt content. It is built
// once at startup and never mutated after overlay loading completes.
type Store struct {
	entries map[string]string
}

// Builtin returns a store populated with the four built-in templates.
// The blank template is the empty string: the manifest file is still written,
// just with zero bytes.
func Builtin() *Store {
	return &Store{entries: map[string]string{
		"basic":        basicTemplate,
		"advanced":     advancedTemplate,
		"data-science": dataScienceTemplate,
		Blank:          "",
	}}
}

// Lookup returns the manifest content for the given template identifier and
// whether the identifier is known.
func (s *Store) Lookup(id string) (string, bool) {
	content, ok := s.entries[id]
	return content, ok
}

// Has reports whether the identifier names a known template.
func (s *Store) Has(id string) bool {
	_, ok := s.entries[id]
	return ok
}

// Names returns all known template identifiers in sorted order, for help and
// error messages.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// overlayFile mirrors the YAML shape of a custom templates file:
//
//	templates:
//	  - name: ml
//	    requirements: |
//	      torch
//	      torchvision
type overlayFile struct {
	Templates []struct {
		Name         string `yaml:"name"`
		Requirements string `yaml:"requirements"`
	} `yaml:"templates"`
}

// LoadOverlay reads a YAML overlay file and merges its templates into the
// store. Overlay entries override built-ins with the same name. Entries with
// an empty name are rejected rather than silently creating an unreachable
// template.
func (s *Store) LoadOverlay(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read templates file %s: %w", path, err)
	}

	var overlay overlayFile
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return fmt.Errorf("failed to parse templates file %s: %w", path, err)
	}

	for _, t := range overlay.Templates {
		if t.Name == "" {
			return fmt.Errorf("templates file %s: entry with empty name", path)
		}
		if _, exists := s.entries[t.Name]; exists {
			logger.Debug("[DEBUG] Overlay template %q overrides a built-in\n", t.Name)
		}
		s.entries[t.Name] = t.Requirements
	}

	logger.Debug("[DEBUG] Loaded %d overlay template(s) from %s\n", len(overlay.Templates), path)
	return nil
}
