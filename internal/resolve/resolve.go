// Package resolve matches catalog entries to files actually present in the
// parts directory. A missing file skips its section with a warning; only an
// unusable parts directory fails the run.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/bookbinder/internal/catalog"
)

// Section is one resolved part: the catalog label and the full path of the
// file that will supply its content.
type Section struct {
	Label string
	Path  string
}

// Resolution is the outcome of one scan: the sections found, in catalog
// order, and the labels skipped because their file was absent.
type Resolution struct {
	Sections []Section
	Skipped  []string
}

// Logger is the minimal logging interface needed by Resolve.
// Defined here (rather than importing the logging package) so that resolve
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Warn(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Resolve checks, for each catalog entry in order, whether the expected file
// exists directly inside partsDir. Found files are recorded under their label;
// absent ones are warned about and recorded as skipped. The only fatal
// condition is partsDir itself being missing, unreadable, or not a directory.
func Resolve(partsDir string, entries []catalog.Entry, verbose bool, log Logger) (Resolution, error) {
	info, err := os.Stat(partsDir)
	if err != nil {
		return Resolution{}, fmt.Errorf("parts directory %s: %w", partsDir, err)
	}
	if !info.IsDir() {
		return Resolution{}, fmt.Errorf("parts directory %s: not a directory", partsDir)
	}
	// Surface permission problems before the per-entry scan so the operator
	// sees one clear error instead of thirteen missing-section warnings.
	if _, err := os.ReadDir(partsDir); err != nil {
		return Resolution{}, fmt.Errorf("parts directory %s: %w", partsDir, err)
	}

	var res Resolution
	for _, e := range entries {
		path := filepath.Join(partsDir, e.File)
		fi, err := os.Stat(path)
		if err != nil || fi.IsDir() {
			log.Warn("Missing section %q: no file %s", e.Label, path)
			res.Skipped = append(res.Skipped, e.Label)
			continue
		}
		log.Debug(verbose, "Resolved section %q -> %s", e.Label, path)
		res.Sections = append(res.Sections, Section{Label: e.Label, Path: path})
	}
	return res, nil
}

// Paths returns just the file paths of the resolved sections, in order.
func (r Resolution) Paths() []string {
	paths := make([]string, len(r.Sections))
	for i, s := range r.Sections {
		paths[i] = s.Path
	}
	return paths
}
