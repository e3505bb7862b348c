package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into paths, assembly, behavior, display, and utility.
// Negated flags (e.g. --no-toc) are applied after Parse so Config defaults hold unless set.

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, unexpected positional args).
func ParseFlags(cfg *Config, version string) error {
	fs := pflag.NewFlagSet("bookbinder", pflag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }
	fs.SortFlags = false

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	definePathFlags(fs, cfg)
	defineAssemblyFlags(fs, cfg, &negated)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printUsage(version)
			os.Exit(0)
		}
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "bookbinder v"+version)
		os.Exit(0)
	}

	if args := fs.Args(); len(args) != 0 {
		return fmt.Errorf("unexpected argument %q (all inputs are flags)", args[0])
	}
	cfg.PartsDir = NormalizeDirArg(cfg.PartsDir)
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noTOC -> IncludeTOC=false) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	noTOC       bool
	noHeadings  bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// definePathFlags registers -p/--parts-dir and -o/--output.
func definePathFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.PartsDir, "parts-dir", "p", cfg.PartsDir, "Directory containing the section DOCX files")
	fs.StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "Destination path for the combined document")
}

// defineAssemblyFlags registers -m/--method, --catalog, --no-toc, --no-headings.
func defineAssemblyFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.VarP(&mergeMethodValue{&cfg.Method}, "method", "m", "Assembly method: auto | word | docx")
	fs.StringVar(&cfg.CatalogFile, "catalog", "", "YAML file replacing the built-in section catalog")
	fs.BoolVar(&n.noTOC, "no-toc", false, "Do not generate a Table of Contents")
	fs.BoolVar(&n.noHeadings, "no-headings", false, "Do not generate section heading paragraphs")
}

// defineBehaviorFlags registers -d/--dry-run.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Resolve and report only; write nothing")
}

// defineDisplayFlags registers --quiet, --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress progress output (warnings and errors still print)")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run system diagnostics and exit")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *pflag.FlagSet, n *negatedFlags) {
	fs.BoolVarP(&n.showVersion, "version", "V", false, "Print version and exit")
	fs.BoolVarP(&n.showHelp, "help", "h", false, "Show this help and exit")
}

// applyNegatedFlags copies negated flag values into cfg (e.g. noTOC -> IncludeTOC=false).
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noTOC {
		cfg.IncludeTOC = false
	}
	if n.noHeadings {
		cfg.SectionHeadings = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "bookbinder v" + version + " — briefing book compiler"},
		{"", ""},
		{"  bookbinder [OPTIONS]", ""},
		{"", ""},
		{"Paths", ""},
		{"  -p, --parts-dir <path>", "Section DOCX directory (default: bookParts)"},
		{"  -o, --output <path>", "Combined document path (default: combined_book.docx)"},
		{"", ""},
		{"Assembly", ""},
		{"  -m, --method <name>", "auto | word | docx (default: auto)"},
		{"  --catalog <path>", "YAML file replacing the built-in section catalog"},
		{"  --no-toc", "Do not generate a Table of Contents"},
		{"  --no-headings", "Do not generate section heading paragraphs"},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Resolve and report only; write nothing"},
		{"", ""},
		{"Display", ""},
		{"  -q, --quiet", "Suppress progress output"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (platform, Word, parts dir)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// pflag.Value adapter so the MergeMethod enum can be used with fs.Var.
// Accepts the original tool's method names as aliases ("native" for word,
// "library" and "python-docx" for docx).

type mergeMethodValue struct{ p *MergeMethod }

func (m *mergeMethodValue) String() string { return string(*m.p) }
func (m *mergeMethodValue) Type() string   { return "method" }
func (m *mergeMethodValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*m.p = MethodAuto
	case "word", "native":
		*m.p = MethodWord
	case "docx", "library", "python-docx":
		*m.p = MethodDocx
	default:
		return fmt.Errorf("invalid method %q (use 'auto', 'word' or 'docx')", s)
	}
	return nil
}
