package docx

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/backmassage/bookbinder/internal/config"
	"github.com/backmassage/bookbinder/internal/logging"
	"github.com/backmassage/bookbinder/internal/resolve"
)

func TestCreateOpenRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part.docx")

	if err := Create(path, []string{"first paragraph", "second paragraph"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	got := d.texts()
	want := []string{"first paragraph", "second paragraph"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("texts() = %v, want %v", got, want)
	}
	if len(d.blocks()) != 2 {
		t.Errorf("blocks() = %d, want 2 (sectPr excluded)", len(d.blocks()))
	}
	if d.sectPr() == nil {
		t.Error("created document should carry a sectPr")
	}
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := Open(filepath.Join(dir, "absent.docx")); err == nil {
			t.Error("Open should fail for a missing file")
		}
	})

	t.Run("not a zip", func(t *testing.T) {
		path := filepath.Join(dir, "plain.docx")
		if err := os.WriteFile(path, []byte("just text, no archive"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Open(path); err == nil {
			t.Error("Open should fail for a non-ZIP file")
		}
	})

	t.Run("zip without document part", func(t *testing.T) {
		if _, err := openBytes(zipWithParts(t, map[string]string{
			"word/styles.xml": "<w:styles/>",
		})); err == nil {
			t.Error("Open should fail without word/document.xml")
		}
	})

	t.Run("malformed document xml", func(t *testing.T) {
		if _, err := openBytes(zipWithParts(t, map[string]string{
			"word/document.xml": "<w:document><w:body>",
		})); err == nil {
			t.Error("Open should fail on unparsable XML")
		}
	})

	t.Run("document without body", func(t *testing.T) {
		if _, err := openBytes(zipWithParts(t, map[string]string{
			"word/document.xml": `<w:document xmlns:w="x"><w:other/></w:document>`,
		})); err == nil {
			t.Error("Open should fail when the body element is absent")
		}
	})
}

func TestMerge_ConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	cfg := mergeConfig(dir)
	cfg.IncludeTOC = false
	cfg.SectionHeadings = false

	secs := writeSections(t, dir, map[string][]string{
		"TOP HITS.docx": {"hit one", "hit two"},
		"ISSUES.docx":   {"issue one"},
	}, []string{"Top Hits", "Issues"})

	runMerge(t, cfg, secs)

	out := openOutput(t, cfg)
	want := []string{"hit one", "hit two", "issue one"}
	if got := out.texts(); !reflect.DeepEqual(got, want) {
		t.Errorf("merged texts = %v, want %v", got, want)
	}
}

func TestMerge_HeadingsAndTOC(t *testing.T) {
	dir := t.TempDir()
	cfg := mergeConfig(dir)

	secs := writeSections(t, dir, map[string][]string{
		"TOP HITS.docx": {"hit one"},
		"ISSUES.docx":   {"issue one"},
	}, []string{"Top Hits", "Issues"})

	runMerge(t, cfg, secs)

	out := openOutput(t, cfg)
	want := []string{
		"Table of Contents",
		tocPlaceholder,
		"Top Hits",
		"hit one",
		"Issues",
		"issue one",
	}
	if got := out.texts(); !reflect.DeepEqual(got, want) {
		t.Errorf("merged texts = %v, want %v", got, want)
	}
}

func TestMerge_SingleSectPrStaysLast(t *testing.T) {
	dir := t.TempDir()
	cfg := mergeConfig(dir)

	secs := writeSections(t, dir, map[string][]string{
		"TOP HITS.docx": {"a"},
		"ISSUES.docx":   {"b"},
	}, []string{"Top Hits", "Issues"})

	runMerge(t, cfg, secs)

	out := openOutput(t, cfg)
	kids := out.body.ChildElements()
	count := 0
	for _, el := range kids {
		if el.Tag == "sectPr" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("merged body has %d sectPr elements, want 1", count)
	}
	if last := kids[len(kids)-1]; last.Tag != "sectPr" {
		t.Errorf("last body element = %s, want sectPr", last.Tag)
	}
}

func TestMerge_OverwritesPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := mergeConfig(dir)
	cfg.IncludeTOC = false
	cfg.SectionHeadings = false

	secs := writeSections(t, dir, map[string][]string{
		"TOP HITS.docx": {"only paragraph"},
	}, []string{"Top Hits"})

	runMerge(t, cfg, secs)
	runMerge(t, cfg, secs)

	out := openOutput(t, cfg)
	if got := out.texts(); !reflect.DeepEqual(got, []string{"only paragraph"}) {
		t.Errorf("re-run should overwrite, not append; texts = %v", got)
	}
}

func TestMerge_InvalidInputFails(t *testing.T) {
	dir := t.TempDir()
	cfg := mergeConfig(dir)

	bad := filepath.Join(dir, "BROKEN.docx")
	if err := os.WriteFile(bad, []byte("not a container"), 0o644); err != nil {
		t.Fatal(err)
	}

	log := testLogger(t)
	err := Merger{}.Merge(context.Background(), &cfg, log,
		[]resolve.Section{{Label: "Broken", Path: bad}})
	if err == nil {
		t.Fatal("Merge should fail for an unparsable input")
	}
	if _, statErr := os.Stat(cfg.OutputPath); !os.IsNotExist(statErr) {
		t.Error("failed merge must not leave an output file")
	}
}

func TestMerge_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	cfg := mergeConfig(dir)

	secs := writeSections(t, dir, map[string][]string{
		"TOP HITS.docx": {"a"},
		"ISSUES.docx":   {"b"},
	}, []string{"Top Hits", "Issues"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := (Merger{}).Merge(ctx, &cfg, testLogger(t), secs); err == nil {
		t.Error("Merge should fail once the context is cancelled")
	}
}

// --- Helpers ---

func mergeConfig(dir string) config.Config {
	cfg := config.DefaultConfig()
	cfg.PartsDir = dir
	cfg.OutputPath = filepath.Join(dir, "out", "combined_book.docx")
	cfg.ColorMode = config.ColorNever
	return cfg
}

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Quiet = true
	cfg.ColorMode = config.ColorNever
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

// writeSections creates section fixtures and returns them in the given order.
func writeSections(t *testing.T, dir string, files map[string][]string, order []string) []resolve.Section {
	t.Helper()
	byLabel := map[string]string{
		"Top Hits": "TOP HITS.docx",
		"Issues":   "ISSUES.docx",
	}
	for name, paragraphs := range files {
		if err := Create(filepath.Join(dir, name), paragraphs); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}
	var secs []resolve.Section
	for _, label := range order {
		secs = append(secs, resolve.Section{Label: label, Path: filepath.Join(dir, byLabel[label])})
	}
	return secs
}

func runMerge(t *testing.T, cfg config.Config, secs []resolve.Section) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := (Merger{}).Merge(context.Background(), &cfg, testLogger(t), secs); err != nil {
		t.Fatalf("Merge: %v", err)
	}
}

func openOutput(t *testing.T, cfg config.Config) *Document {
	t.Helper()
	out, err := Open(cfg.OutputPath)
	if err != nil {
		t.Fatalf("Open output: %v", err)
	}
	return out
}

// zipWithParts builds an in-memory container with the given parts.
func zipWithParts(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var parts []part
	for name, content := range files {
		parts = append(parts, part{name: name, data: []byte(content)})
	}
	path := filepath.Join(t.TempDir(), "fixture.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	// writeParts substitutes the document argument for word/document.xml, so
	// pass that part's own content through when the fixture defines it.
	if err := writeParts(f, parts, []byte(files[documentPart])); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}
