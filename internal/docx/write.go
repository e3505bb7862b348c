package docx

import (
	"archive/zip"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// wNamespace is the WordprocessingML main namespace.
const wNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Save writes the container to path, overwriting any existing file. Every
// part is copied verbatim except word/document.xml, which is re-serialized
// from the in-memory DOM. A partially written file is removed on error.
func (d *Document) Save(path string) error {
	serialized, err := d.xml.WriteToBytes()
	if err != nil {
		return errors.Wrap(err, "serialize document body")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	if err := writeParts(f, d.parts, serialized); err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrapf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

func writeParts(f *os.File, parts []part, document []byte) error {
	zw := zip.NewWriter(f)
	for _, p := range parts {
		data := p.data
		if p.name == documentPart {
			data = document
		}
		w, err := zw.Create(p.name)
		if err != nil {
			return errors.Wrapf(err, "part %s", p.name)
		}
		if _, err := w.Write(data); err != nil {
			return errors.Wrapf(err, "part %s", p.name)
		}
	}
	return zw.Close()
}

// Create writes a minimal valid DOCX at path containing one plain paragraph
// per entry. Used by the diagnostics self-test and by tests that need
// well-formed section parts.
func Create(path string, paragraphs []string) error {
	xml := etree.NewDocument()
	xml.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := xml.CreateElement("w:document")
	root.CreateAttr("xmlns:w", wNamespace)
	body := root.CreateElement("w:body")
	for _, text := range paragraphs {
		p := body.CreateElement("w:p")
		textRun(p, text)
	}
	body.CreateElement("w:sectPr")

	serialized, err := xml.WriteToBytes()
	if err != nil {
		return errors.Wrap(err, "serialize document body")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}

	parts := []part{
		{name: "[Content_Types].xml", data: []byte(contentTypesXML)},
		{name: "_rels/.rels", data: []byte(relsXML)},
		{name: documentPart, data: serialized},
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := writeParts(f, parts, serialized); err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrapf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>
`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>
`
