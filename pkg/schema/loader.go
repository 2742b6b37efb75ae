package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadLibraryFromFile loads a possibility library from a single YAML file
// mapping title to Possibility, then validates it.
func LoadLibraryFromFile(path string) (Library, error) {
	lib, err := parseLibraryFile(path)
	if err != nil {
		return nil, err
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// LoadLibraryFromDirectory loads every *.yml/*.yaml file in dir, in sorted
// filename order, and merges them into a single Library before validating.
// Validation happens once, after the merge, so a child in one file may
// reference a title defined in another - individually validating each file
// first would reject that legitimate cross-file reference. A title repeated
// across files overwrites the earlier one, mirroring the source's
// "last file wins" layering for multi-file world packs.
func LoadLibraryFromDirectory(dir string) (Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading library directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".yml" || ext == ".yaml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	merged := Library{}
	for _, name := range names {
		lib, err := parseLibraryFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		for title, p := range lib {
			merged[title] = p
		}
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func parseLibraryFile(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading library file: %w", err)
	}
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parsing library YAML %s: %w", path, err)
	}
	return lib, nil
}
