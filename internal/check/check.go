// Package check provides system diagnostics (--check mode): platform and
// Word automation availability, catalog and parts directory status, and a
// DOCX writer self-test.
package check

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/backmassage/bookbinder/internal/catalog"
	"github.com/backmassage/bookbinder/internal/config"
	"github.com/backmassage/bookbinder/internal/display"
	"github.com/backmassage/bookbinder/internal/docx"
	"github.com/backmassage/bookbinder/internal/resolve"
	"github.com/backmassage/bookbinder/internal/word"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: platform, Word automation,
// catalog, parts directory resolution preview, and a structural-merge writer
// self-test. Informational only; returns false when the environment cannot
// produce a book by any method.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")
	log.Info("Platform: %s/%s", runtime.GOOS, runtime.GOARCH)

	wordOK := checkWord(log)
	docxOK := checkDocxWriter(log)
	checkCatalog(cfg, log)
	checkPartsDir(cfg, log)

	return wordOK || docxOK
}

// checkWord reports whether the native automation path can run here.
func checkWord(log Logger) bool {
	if err := word.Available(); err != nil {
		log.Warn("Word automation: unavailable (%v)", err)
		log.Warn("  'auto' runs will fall back to the structural merge")
		return false
	}
	log.Success("Word automation: available")
	return true
}

// checkDocxWriter verifies the structural merge path can produce a readable
// document by writing and re-opening a minimal DOCX in a temp directory.
func checkDocxWriter(log Logger) bool {
	dir, err := os.MkdirTemp("", "bookbinder-check-")
	if err != nil {
		log.Error("Structural merge: cannot create temp directory: %v", err)
		return false
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "selftest.docx")
	if err := docx.Create(path, []string{"self test"}); err != nil {
		log.Error("Structural merge: writer self-test failed: %v", err)
		return false
	}
	if _, err := docx.Open(path); err != nil {
		log.Error("Structural merge: reader self-test failed: %v", err)
		return false
	}
	log.Success("Structural merge: writer/reader self-test passed")
	return true
}

// checkCatalog reports which catalog the run would use and its size.
func checkCatalog(cfg *config.Config, log Logger) {
	if cfg.CatalogFile == "" {
		log.Info("Catalog: built-in (%s)", display.FormatSectionCount(len(catalog.Default())))
		return
	}
	entries, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Error("Catalog: %v", err)
		return
	}
	log.Success("Catalog: %s (%s)", cfg.CatalogFile, display.FormatSectionCount(len(entries)))
}

// checkPartsDir previews resolution against the parts directory, if it exists.
func checkPartsDir(cfg *config.Config, log Logger) {
	entries := catalog.Default()
	if cfg.CatalogFile != "" {
		loaded, err := catalog.Load(cfg.CatalogFile)
		if err != nil {
			return // already reported by checkCatalog
		}
		entries = loaded
	}

	res, err := resolve.Resolve(cfg.PartsDir, entries, false, silentLogger{})
	if err != nil {
		log.Warn("Parts directory: %v", err)
		return
	}
	if len(res.Sections) == 0 {
		log.Warn("Parts directory %s: no section files present", cfg.PartsDir)
		return
	}
	log.Success("Parts directory %s: %s present, %d missing",
		cfg.PartsDir, display.FormatSectionCount(len(res.Sections)), len(res.Skipped))
	for _, sec := range res.Sections {
		log.Info("  %s -> %s", sec.Label, filepath.Base(sec.Path))
	}
}

// silentLogger suppresses the per-entry warnings Resolve would emit; the
// preview reports a single summary line instead.
type silentLogger struct{}

func (silentLogger) Warn(string, ...interface{})        {}
func (silentLogger) Debug(bool, string, ...interface{}) {}
