// Command bookbinder is the CLI entrypoint for the briefing book compiler.
//
// It parses flags, validates configuration and paths, and either runs
// system diagnostics (--check) or the resolve/select/merge pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/bookbinder/internal/check"
	"github.com/backmassage/bookbinder/internal/config"
	"github.com/backmassage/bookbinder/internal/display"
	"github.com/backmassage/bookbinder/internal/logging"
	"github.com/backmassage/bookbinder/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "bookbinder: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "bookbinder: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bookbinder: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	if !cfg.Quiet {
		display.PrintBanner()
	}

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	// Resolve and validate paths: the parts directory must exist, the output
	// directory is created if needed, and the output must not be inside the
	// parts directory (prevents re-consuming the combined book as a part).
	partsAbs, err := absPath(cfg.PartsDir)
	if err != nil {
		log.Error("Parts directory not found: %s", cfg.PartsDir)
		return 1
	}
	outDir := filepath.Dir(cfg.OutputPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Error("Cannot create output directory: %s", outDir)
		return 1
	}
	outDirAbs, err := absPath(outDir)
	if err != nil {
		log.Error("Cannot resolve output path: %s", cfg.OutputPath)
		return 1
	}
	outputAbs := filepath.Join(outDirAbs, filepath.Base(cfg.OutputPath))
	if err := cfg.ValidatePaths(partsAbs, outputAbs); err != nil {
		log.Error("%v", err)
		log.Error("Choose an output path outside: %s", cfg.PartsDir)
		return 1
	}

	log.Info("=== bookbinder v%s (%s) ===", version, commit)
	log.Info("Parts:  %s", cfg.PartsDir)
	log.Info("Output: %s", cfg.OutputPath)
	log.Info("")

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// merge can stop between sections without leaving partial output.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping…")
		cancel()
	}()

	// Phase 4: Run pipeline (resolve → select → merge → report).
	stats := pipeline.Run(ctx, &cfg, log)

	if stats.Failed {
		return 1
	}
	return 0
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of parts vs output directory hierarchies.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
