// Package docx reads, splices, and writes DOCX containers (ZIP archives of
// OOXML parts) without a running editor. It backs the structural merge path:
// block-level body content from several documents is concatenated into one.
//
// Fidelity limits of this path are accepted by design: content that depends
// on package relationships of the appended files (embedded images, macros)
// and header/footer constructs do not transfer. The Word automation path
// preserves those.
package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// documentPart is the main body part of a DOCX container.
const documentPart = "word/document.xml"

// Sentinel errors for containers that cannot serve as merge inputs.
var (
	ErrNotZip       = errors.New("not a DOCX container (not a ZIP archive)")
	ErrNoDocument   = errors.New("not a DOCX container (no word/document.xml part)")
	ErrMalformedXML = errors.New("malformed word/document.xml")
)

// part is one file of the container, kept verbatim so saving reproduces the
// original package byte-for-byte except for the rewritten document part.
type part struct {
	name string
	data []byte
}

// Document is an in-memory DOCX: the raw container parts plus a parsed DOM
// of word/document.xml positioned at the <w:body> element.
type Document struct {
	parts []part
	xml   *etree.Document
	body  *etree.Element
}

// Open reads the DOCX container at path into memory and parses its document
// part. The file handle is released before Open returns.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	d, err := openBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return d, nil
}

// openBytes parses a DOCX container from memory.
func openBytes(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, ErrNotZip
	}

	d := &Document{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "open part %s", f.Name)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "read part %s", f.Name)
		}
		d.parts = append(d.parts, part{name: f.Name, data: content})
	}

	raw, ok := d.partData(documentPart)
	if !ok {
		return nil, ErrNoDocument
	}

	xml := etree.NewDocument()
	if err := xml.ReadFromBytes(raw); err != nil {
		return nil, ErrMalformedXML
	}
	root := xml.Root()
	if root == nil || root.Tag != "document" {
		return nil, ErrMalformedXML
	}
	body := childElement(root, "body")
	if body == nil {
		return nil, ErrMalformedXML
	}

	d.xml = xml
	d.body = body
	return d, nil
}

// partData returns the raw bytes of a named container part.
func (d *Document) partData(name string) ([]byte, bool) {
	for _, p := range d.parts {
		if p.name == name {
			return p.data, true
		}
	}
	return nil, false
}

// blocks returns the block-level children of the body (paragraphs, tables),
// excluding the trailing section properties element.
func (d *Document) blocks() []*etree.Element {
	var out []*etree.Element
	for _, el := range d.body.ChildElements() {
		if el.Tag == "sectPr" {
			continue
		}
		out = append(out, el)
	}
	return out
}

// sectPr returns the body's section properties element, or nil.
func (d *Document) sectPr() *etree.Element {
	return childElement(d.body, "sectPr")
}

// texts collects the document's visible run text in body order. Used by the
// diagnostics self-test and tests to assert on merged content.
func (d *Document) texts() []string {
	var out []string
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if el.Tag == "t" {
			out = append(out, el.Text())
			return
		}
		for _, c := range el.ChildElements() {
			walk(c)
		}
	}
	walk(d.body)
	return out
}

// childElement returns the first child with the given local tag, ignoring
// the namespace prefix (documents in the wild vary between w: and defaults).
func childElement(el *etree.Element, tag string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}
