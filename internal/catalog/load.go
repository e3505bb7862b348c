package catalog

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes and validates a YAML catalog payload: a sequence of
// {label, file} mappings whose order defines merge order.
func Parse(data []byte) ([]Entry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("catalog: file is empty")
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Load reads a replacement catalog from a YAML file. The built-in catalog is
// not merged in; the file fully defines the book layout.
func Load(path string) ([]Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("catalog: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return entries, nil
}

// validate rejects empty catalogs, blank fields, path separators in file
// names (entries must be direct children of the parts directory), and
// duplicate labels or file names.
func validate(entries []Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("catalog: no entries defined")
	}
	labels := make(map[string]bool, len(entries))
	files := make(map[string]bool, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Label) == "" {
			return fmt.Errorf("catalog: entry %d has an empty label", i+1)
		}
		if strings.TrimSpace(e.File) == "" {
			return fmt.Errorf("catalog: entry %q has an empty file name", e.Label)
		}
		if strings.ContainsAny(e.File, `/\`) {
			return fmt.Errorf("catalog: entry %q: file name %q must not contain path separators", e.Label, e.File)
		}
		if labels[e.Label] {
			return fmt.Errorf("catalog: duplicate label %q", e.Label)
		}
		if files[e.File] {
			return fmt.Errorf("catalog: duplicate file name %q", e.File)
		}
		labels[e.Label] = true
		files[e.File] = true
	}
	return nil
}
