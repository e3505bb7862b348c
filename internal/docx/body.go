package docx

// This file builds the generated WordprocessingML fragments: section heading
// paragraphs, the Table of Contents block, and the field runs both rely on.
// Field runs follow the begin / instrText / separate / placeholder / end
// shape Word expects; the placeholder renders until fields are updated.

import "github.com/beevik/etree"

// tocFieldCode collects Heading 1-3 paragraphs with hyperlinked, numbered
// entries once the field is updated in Word.
const tocFieldCode = `TOC \o "1-3" \h \z \u`

// tocPlaceholder is shown where the TOC will render before a field update.
const tocPlaceholder = "Update this table in Word to populate the entries."

// headingParagraph returns a Heading1-styled paragraph carrying a section
// label, starting on a fresh page.
func headingParagraph(label string) *etree.Element {
	p := etree.NewElement("w:p")
	pPr := p.CreateElement("w:pPr")
	pPr.CreateElement("w:pStyle").CreateAttr("w:val", "Heading1")
	pPr.CreateElement("w:pageBreakBefore")
	textRun(p, label)
	return p
}

// titleParagraph returns a Title-styled paragraph.
func titleParagraph(text string) *etree.Element {
	p := etree.NewElement("w:p")
	pPr := p.CreateElement("w:pPr")
	pPr.CreateElement("w:pStyle").CreateAttr("w:val", "Title")
	textRun(p, text)
	return p
}

// pageBreakParagraph returns an empty paragraph containing a hard page break.
func pageBreakParagraph() *etree.Element {
	p := etree.NewElement("w:p")
	r := p.CreateElement("w:r")
	r.CreateElement("w:br").CreateAttr("w:type", "page")
	return p
}

// tocBlock returns the front-matter paragraphs for a generated Table of
// Contents: title, TOC field, and a page break separating it from content.
func tocBlock() []*etree.Element {
	field := etree.NewElement("w:p")
	fieldRun(field, tocFieldCode, tocPlaceholder)
	return []*etree.Element{
		titleParagraph("Table of Contents"),
		field,
		pageBreakParagraph(),
	}
}

// textRun appends a plain text run to a paragraph.
func textRun(p *etree.Element, text string) {
	r := p.CreateElement("w:r")
	t := r.CreateElement("w:t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(text)
}

// fieldRun appends a complete field run (begin, instruction, separator,
// placeholder text, end) to a paragraph.
func fieldRun(p *etree.Element, code, placeholder string) {
	r := p.CreateElement("w:r")

	begin := r.CreateElement("w:fldChar")
	begin.CreateAttr("w:fldCharType", "begin")

	instr := r.CreateElement("w:instrText")
	instr.CreateAttr("xml:space", "preserve")
	instr.SetText(code)

	sep := r.CreateElement("w:fldChar")
	sep.CreateAttr("w:fldCharType", "separate")

	t := r.CreateElement("w:t")
	t.SetText(placeholder)

	end := r.CreateElement("w:fldChar")
	end.CreateAttr("w:fldCharType", "end")
}
