package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_OrderAndShape(t *testing.T) {
	entries := Default()

	if len(entries) != 13 {
		t.Fatalf("Default() returned %d entries, want 13", len(entries))
	}
	if entries[0].Label != "Top Hits" || entries[0].File != "TOP HITS.docx" {
		t.Errorf("first entry = %+v, want Top Hits / TOP HITS.docx", entries[0])
	}
	if last := entries[len(entries)-1]; last.File != "OFFICIAL OFFICE DISBURSEMENTS.docx" {
		t.Errorf("last entry file = %q, want OFFICIAL OFFICE DISBURSEMENTS.docx", last.File)
	}

	for _, e := range entries {
		if !strings.HasSuffix(e.File, ".docx") {
			t.Errorf("entry %q: file %q is not a .docx name", e.Label, e.File)
		}
	}
}

func TestDefault_Valid(t *testing.T) {
	if err := validate(Default()); err != nil {
		t.Errorf("built-in catalog failed validation: %v", err)
	}
}

func TestDefault_ReturnsFreshSlice(t *testing.T) {
	a := Default()
	a[0].Label = "mutated"
	b := Default()
	if b[0].Label != "Top Hits" {
		t.Error("Default() shares backing storage between calls")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "valid two entries",
			yaml: "- label: Intro\n  file: INTRO.docx\n- label: Findings\n  file: FINDINGS.docx\n",
		},
		{"empty payload", "   \n", true},
		{"not a sequence", "label: Intro\nfile: INTRO.docx\n", true},
		{"empty label", "- label: \"\"\n  file: INTRO.docx\n", true},
		{"empty file", "- label: Intro\n  file: \"\"\n", true},
		{"duplicate label", "- label: Intro\n  file: A.docx\n- label: Intro\n  file: B.docx\n", true},
		{"duplicate file", "- label: A\n  file: X.docx\n- label: B\n  file: X.docx\n", true},
		{"path separator in file", "- label: Intro\n  file: sub/INTRO.docx\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse_PreservesOrder(t *testing.T) {
	entries, err := Parse([]byte(
		"- label: Zulu\n  file: Z.docx\n" +
			"- label: Alpha\n  file: A.docx\n" +
			"- label: Mike\n  file: M.docx\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Zulu", "Alpha", "Mike"}
	for i, w := range want {
		if entries[i].Label != w {
			t.Errorf("entry %d label = %q, want %q", i, entries[i].Label, w)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := "- label: Summary\n  file: SUMMARY.docx\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 || entries[0].File != "SUMMARY.docx" {
		t.Errorf("Load returned %+v", entries)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
	if _, err := Load(dir); err == nil {
		t.Error("Load should fail for a directory")
	}
}
