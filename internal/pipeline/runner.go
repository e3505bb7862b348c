// Package pipeline orchestrates one compile of the briefing book: resolve
// catalog files, select the assembly method, run the chosen merger, and
// report the outcome.
package pipeline

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/backmassage/bookbinder/internal/catalog"
	"github.com/backmassage/bookbinder/internal/config"
	"github.com/backmassage/bookbinder/internal/display"
	"github.com/backmassage/bookbinder/internal/logging"
	"github.com/backmassage/bookbinder/internal/merge"
	"github.com/backmassage/bookbinder/internal/resolve"
)

// Run is the top-level entry point. It loads the catalog, resolves section
// files, selects a merger, and produces the combined document. Per-file
// absences are warnings; everything else fails the run before or during the
// merge, never leaving a partial output behind.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	entries := catalog.Default()
	if cfg.CatalogFile != "" {
		loaded, err := catalog.Load(cfg.CatalogFile)
		if err != nil {
			log.Error("%v", err)
			stats.Failed = true
			return stats
		}
		log.Debug(cfg.Verbose, "Using catalog override %s (%d sections)", cfg.CatalogFile, len(loaded))
		entries = loaded
	}
	stats.Cataloged = len(entries)

	res, err := resolve.Resolve(cfg.PartsDir, entries, cfg.Verbose, log)
	if err != nil {
		log.Error("%v", err)
		stats.Failed = true
		return stats
	}
	stats.Included = len(res.Sections)
	stats.Skipped = len(res.Skipped)

	// Fail fast before any merger runs; the existing output stays untouched.
	if len(res.Sections) == 0 {
		log.Error("Nothing to merge: none of the %d cataloged section files were found in %s",
			len(entries), cfg.PartsDir)
		stats.Failed = true
		return stats
	}

	merger, err := merge.Select(cfg, log)
	if err != nil {
		log.Error("%v", err)
		stats.Failed = true
		return stats
	}

	logRunHeader(cfg, log, &stats, merger.Name())

	if cfg.DryRun {
		for _, sec := range res.Sections {
			log.Info("  would append %q (%s)", sec.Label, sec.Path)
		}
		log.Success("[DRY] Would combine %d sections into %s", stats.Included, cfg.OutputPath)
		return stats
	}

	start := time.Now()
	if err := merger.Merge(ctx, cfg, log, res.Sections); err != nil {
		// No partial output is valid; remove whatever the merger managed to write.
		os.Remove(cfg.OutputPath)
		if ctx.Err() != nil {
			log.Warn("Interrupted, removed partial output")
		} else {
			log.Error("Merge failed: %v", err)
		}
		stats.Failed = true
		return stats
	}

	if fi, err := os.Stat(cfg.OutputPath); err == nil {
		stats.OutputBytes = fi.Size()
	}

	log.Success("Combined %d of %d sections into %s (%s) in %.1fs",
		stats.Included, stats.Cataloged, cfg.OutputPath,
		display.FormatBytes(stats.OutputBytes), time.Since(start).Seconds())
	if stats.Skipped > 0 {
		log.Warn("Skipped %d sections: %s", stats.Skipped, strings.Join(res.Skipped, ", "))
	}
	return stats
}

// logRunHeader summarizes the run before the merge starts.
func logRunHeader(cfg *config.Config, log *logging.Logger, stats *RunStats, method string) {
	log.Info("Sections: %d of %d present in %s", stats.Included, stats.Cataloged, cfg.PartsDir)
	log.Info("Method: %s", method)
	log.Info("Output: %s", cfg.OutputPath)
	if cfg.IncludeTOC {
		log.Info("Front matter: Table of Contents (update fields in Word to populate)")
	}
	if cfg.SectionHeadings {
		log.Info("Headings: one Heading 1 paragraph per section")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be written")
	}
}
