// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults match the original BookMaker tool (bookParts directory,
// combined_book.docx output, automatic method selection).
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// MergeMethod selects the document assembly backend.
type MergeMethod string

const (
	MethodAuto MergeMethod = "auto" // Prefer Word automation, fall back to the structural merge (default).
	MethodWord MergeMethod = "word" // Microsoft Word automation; fatal if unavailable.
	MethodDocx MergeMethod = "docx" // Structural OOXML merge; works everywhere.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths.
	PartsDir   string // Directory scanned for section files. Default: "bookParts".
	OutputPath string // Destination for the combined document. Default: "combined_book.docx".

	// Assembly settings.
	Method      MergeMethod // Default: "auto".
	CatalogFile string      // Optional YAML catalog override; empty = built-in catalog.

	// Generated front-matter and structure.
	IncludeTOC      bool // Default: true. Cleared by --no-toc.
	SectionHeadings bool // Default: true. Cleared by --no-headings.

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Quiet     bool // Suppress progress output; warnings and errors still surface.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults matching the original
// tool's behavior. Used as the base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		PartsDir:        "bookParts",
		OutputPath:      "combined_book.docx",
		Method:          MethodAuto,
		IncludeTOC:      true,
		SectionHeadings: true,
		DryRun:          false,
		Quiet:           false,
		Verbose:         false,
		ColorMode:       ColorAuto,
		CheckOnly:       false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields (method, color) hold valid values and, when
// not in CheckOnly mode, that the parts directory and output path are set and
// the output is a .docx name.
func (c *Config) Validate() error {
	switch c.Method {
	case MethodAuto, MethodWord, MethodDocx:
		// valid
	default:
		return errors.New("invalid method (use 'auto', 'word' or 'docx')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.PartsDir == "" {
		return errors.New("parts directory must not be empty")
	}
	if c.OutputPath == "" {
		return errors.New("output path must not be empty")
	}
	if !strings.EqualFold(filepath.Ext(c.OutputPath), ".docx") {
		return errors.New("output path must end in .docx")
	}
	return nil
}

// ValidatePaths ensures the resolved output file is not inside (or equal to)
// the resolved parts directory. This prevents a later run from picking the
// combined book back up as a section part. Both arguments must be absolute,
// symlink-resolved paths.
func (c *Config) ValidatePaths(partsAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == partsAbs || strings.HasPrefix(outputAbs, partsAbs+sep) {
		return errors.New("output path must not be inside the parts directory")
	}
	return nil
}
