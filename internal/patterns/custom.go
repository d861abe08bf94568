// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package patterns

import (
	"fmt"
	"os"
	"regexp"

	"go.yaml.in/yaml/v3"
)

// customFile is the on-disk representation of a user-supplied pattern file.
// Users who hit a platform the built-in table does not cover can add its
// stamps here instead of waiting for a release.
type customFile struct {
	Patterns []customPattern `yaml:"patterns"`
}

// customPattern is one user-supplied pattern entry.
type customPattern struct {
	// Name identifies the pattern in reports and tests.
	Name string `yaml:"name"`

	// Regex is the line-level expression, RE2 syntax.
	Regex string `yaml:"regex"`
}

// LoadFile reads additional patterns from a YAML file. Entries are returned
// in file order with line scope; callers append them after the built-ins.
func LoadFile(path string) ([]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %s: %w", path, err)
	}

	var cf customFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing patterns file %s: %w", path, err)
	}

	var loaded []Pattern
	for i, cp := range cf.Patterns {
		if cp.Name == "" {
			cp.Name = fmt.Sprintf("custom_%d", i+1)
		}
		if cp.Regex == "" {
			return nil, fmt.Errorf("pattern %q in %s has no regex", cp.Name, path)
		}
		re, err := regexp.Compile(cp.Regex)
		if err != nil {
			return nil, fmt.Errorf("pattern %q in %s: %w", cp.Name, path, err)
		}
		loaded = append(loaded, Pattern{Name: cp.Name, Re: re, Scope: ScopeLine})
	}
	return loaded, nil
}

// Load returns the built-in library, extended with patterns from path when
// path is non-empty.
func Load(path string) ([]Pattern, error) {
	lib := Library()
	if path == "" {
		return lib, nil
	}
	custom, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	merged := make([]Pattern, 0, len(lib)+len(custom))
	merged = append(merged, lib...)
	merged = append(merged, custom...)
	return merged, nil
}
