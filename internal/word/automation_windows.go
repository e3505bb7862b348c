//go:build windows

package word

import (
	"context"
	"path/filepath"
	"runtime"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/pkg/errors"

	"github.com/backmassage/bookbinder/internal/config"
	"github.com/backmassage/bookbinder/internal/logging"
	"github.com/backmassage/bookbinder/internal/resolve"
)

// Word object model constants (values from the VBA enums).
const (
	wdPageBreak             = 7
	wdStory                 = 6
	wdHeaderFooterPrimary   = 1
	wdAlignPageNumberCenter = 1
	wdDoNotSaveChanges      = 0
)

// Available reports whether Word automation can run: the ProgID must resolve
// to a registered COM class.
func Available() error {
	if _, err := ole.ClassIDFrom("Word.Application"); err != nil {
		return ErrWordNotInstalled
	}
	return nil
}

// compose owns one hidden Word instance end to end: create a document, insert
// front matter and every section, save, then close and quit no matter what.
func compose(ctx context.Context, cfg *config.Config, log *logging.Logger, secs []resolve.Section) error {
	outputAbs, err := filepath.Abs(cfg.OutputPath)
	if err != nil {
		return errors.Wrap(err, "resolve output path")
	}

	// COM apartment threading: the Word instance must be used from the one
	// OS thread that initialized COM.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitialize(0); err != nil {
		return errors.Wrap(err, "initialize COM")
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("Word.Application")
	if err != nil {
		return errors.Wrap(ErrWordNotInstalled, err.Error())
	}
	defer unknown.Release()

	app, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return errors.Wrap(err, "query Word dispatch interface")
	}
	defer app.Release()
	defer oleutil.CallMethod(app, "Quit", wdDoNotSaveChanges)

	if _, err := oleutil.PutProperty(app, "Visible", false); err != nil {
		return errors.Wrap(err, "hide Word window")
	}

	docs, err := getDispatch(app, "Documents")
	if err != nil {
		return err
	}
	defer docs.Release()

	doc, err := callDispatch(docs, "Add")
	if err != nil {
		return err
	}
	defer doc.Release()
	defer oleutil.CallMethod(doc, "Close", wdDoNotSaveChanges)

	sel, err := getDispatch(app, "Selection")
	if err != nil {
		return err
	}
	defer sel.Release()

	if cfg.IncludeTOC {
		if err := insertTOC(doc, sel); err != nil {
			return err
		}
	}

	for i, sec := range secs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := insertSection(cfg, sel, sec, i > 0); err != nil {
			return errors.Wrapf(err, "section %q", sec.Label)
		}
		log.Debug(cfg.Verbose, "Inserted section %q from %s", sec.Label, sec.Path)
	}

	if cfg.IncludeTOC {
		if err := updateTOC(doc); err != nil {
			return err
		}
	}
	if err := applyPageNumberFooters(doc); err != nil {
		return err
	}

	if _, err := oleutil.CallMethod(doc, "SaveAs", outputAbs); err != nil {
		return errors.Wrapf(err, "save combined document to %s", outputAbs)
	}
	return nil
}

// insertSection appends one part at the insertion point: optional page break,
// optional Heading 1 label paragraph, then the file content, cursor to end.
func insertSection(cfg *config.Config, sel *ole.IDispatch, sec resolve.Section, pageBreak bool) error {
	pathAbs, err := filepath.Abs(sec.Path)
	if err != nil {
		return errors.Wrap(err, "resolve section path")
	}

	if pageBreak {
		if _, err := oleutil.CallMethod(sel, "InsertBreak", wdPageBreak); err != nil {
			return errors.Wrap(err, "insert page break")
		}
	}
	if cfg.SectionHeadings {
		if _, err := oleutil.PutProperty(sel, "Style", "Heading 1"); err != nil {
			return errors.Wrap(err, "apply heading style")
		}
		if _, err := oleutil.CallMethod(sel, "TypeText", sec.Label); err != nil {
			return errors.Wrap(err, "type heading text")
		}
		if _, err := oleutil.CallMethod(sel, "TypeParagraph"); err != nil {
			return errors.Wrap(err, "finish heading paragraph")
		}
	}
	if _, err := oleutil.CallMethod(sel, "InsertFile", pathAbs); err != nil {
		return errors.Wrap(err, "insert file")
	}
	if _, err := oleutil.CallMethod(sel, "EndKey", wdStory); err != nil {
		return errors.Wrap(err, "move to end of story")
	}
	return nil
}

// insertTOC types a Title paragraph and adds a Table of Contents over heading
// levels 1-3, followed by a page break so content starts on a fresh page.
func insertTOC(doc, sel *ole.IDispatch) error {
	if _, err := oleutil.PutProperty(sel, "Style", "Title"); err != nil {
		return errors.Wrap(err, "apply title style")
	}
	if _, err := oleutil.CallMethod(sel, "TypeText", "Table of Contents"); err != nil {
		return errors.Wrap(err, "type TOC title")
	}
	if _, err := oleutil.CallMethod(sel, "TypeParagraph"); err != nil {
		return errors.Wrap(err, "finish TOC title")
	}

	rng, err := getDispatch(sel, "Range")
	if err != nil {
		return err
	}
	defer rng.Release()

	tocs, err := getDispatch(doc, "TablesOfContents")
	if err != nil {
		return err
	}
	defer tocs.Release()

	// Add(Range, UseHeadingStyles, UpperHeadingLevel, LowerHeadingLevel)
	if _, err := oleutil.CallMethod(tocs, "Add", rng, true, 1, 3); err != nil {
		return errors.Wrap(err, "add table of contents")
	}

	if _, err := oleutil.CallMethod(sel, "EndKey", wdStory); err != nil {
		return errors.Wrap(err, "move past TOC")
	}
	if _, err := oleutil.CallMethod(sel, "TypeParagraph"); err != nil {
		return errors.Wrap(err, "separate TOC")
	}
	if _, err := oleutil.CallMethod(sel, "InsertBreak", wdPageBreak); err != nil {
		return errors.Wrap(err, "page break after TOC")
	}
	if _, err := oleutil.CallMethod(sel, "EndKey", wdStory); err != nil {
		return errors.Wrap(err, "move to end of story")
	}
	return nil
}

// updateTOC refreshes the first table of contents so entries and page numbers
// reflect the assembled document.
func updateTOC(doc *ole.IDispatch) error {
	tocs, err := getDispatch(doc, "TablesOfContents")
	if err != nil {
		return err
	}
	defer tocs.Release()

	countV, err := oleutil.GetProperty(tocs, "Count")
	if err != nil {
		return errors.Wrap(err, "Word TablesOfContents.Count")
	}
	if int(countV.Val) == 0 {
		return nil
	}

	toc, err := callDispatch(tocs, "Item", 1)
	if err != nil {
		return err
	}
	defer toc.Release()

	if _, err := oleutil.CallMethod(toc, "Update"); err != nil {
		return errors.Wrap(err, "update table of contents")
	}
	return nil
}

// applyPageNumberFooters gives every Word section a centered page number in
// its primary footer with continuous numbering across the book.
func applyPageNumberFooters(doc *ole.IDispatch) error {
	sections, err := getDispatch(doc, "Sections")
	if err != nil {
		return err
	}
	defer sections.Release()

	countV, err := oleutil.GetProperty(sections, "Count")
	if err != nil {
		return errors.Wrap(err, "Word Sections.Count")
	}

	for i := 1; i <= int(countV.Val); i++ {
		if err := applyFooter(sections, i); err != nil {
			return errors.Wrapf(err, "section %d footer", i)
		}
	}
	return nil
}

func applyFooter(sections *ole.IDispatch, index int) error {
	section, err := callDispatch(sections, "Item", index)
	if err != nil {
		return err
	}
	defer section.Release()

	footers, err := getDispatch(section, "Footers")
	if err != nil {
		return err
	}
	defer footers.Release()

	footer, err := getDispatchIndexed(footers, "Item", wdHeaderFooterPrimary)
	if err != nil {
		return err
	}
	defer footer.Release()

	rng, err := getDispatch(footer, "Range")
	if err != nil {
		return err
	}
	defer rng.Release()

	if _, err := oleutil.PutProperty(rng, "Text", ""); err != nil {
		return errors.Wrap(err, "clear footer text")
	}

	nums, err := getDispatch(footer, "PageNumbers")
	if err != nil {
		return err
	}
	defer nums.Release()

	if _, err := oleutil.PutProperty(nums, "RestartNumberingAtSection", false); err != nil {
		return errors.Wrap(err, "set continuous numbering")
	}
	if _, err := oleutil.CallMethod(nums, "Add", wdAlignPageNumberCenter); err != nil {
		return errors.Wrap(err, "add page number")
	}

	pf, err := getDispatch(rng, "ParagraphFormat")
	if err != nil {
		return err
	}
	defer pf.Release()

	if _, err := oleutil.PutProperty(pf, "Alignment", wdAlignPageNumberCenter); err != nil {
		return errors.Wrap(err, "center footer paragraph")
	}
	return nil
}

// --- Dispatch helpers ---

// getDispatch reads an object-valued property and returns its dispatch.
func getDispatch(obj *ole.IDispatch, name string) (*ole.IDispatch, error) {
	v, err := oleutil.GetProperty(obj, name)
	if err != nil {
		return nil, errors.Wrapf(err, "Word %s", name)
	}
	d := v.ToIDispatch()
	if d == nil {
		return nil, errors.Errorf("Word %s: not an object", name)
	}
	return d, nil
}

// getDispatchIndexed reads an indexed object-valued property.
func getDispatchIndexed(obj *ole.IDispatch, name string, index int) (*ole.IDispatch, error) {
	v, err := oleutil.GetProperty(obj, name, index)
	if err != nil {
		return nil, errors.Wrapf(err, "Word %s(%d)", name, index)
	}
	d := v.ToIDispatch()
	if d == nil {
		return nil, errors.Errorf("Word %s(%d): not an object", name, index)
	}
	return d, nil
}

// callDispatch invokes a method and returns its object result.
func callDispatch(obj *ole.IDispatch, name string, args ...interface{}) (*ole.IDispatch, error) {
	v, err := oleutil.CallMethod(obj, name, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "Word %s", name)
	}
	d := v.ToIDispatch()
	if d == nil {
		return nil, errors.Errorf("Word %s: no object returned", name)
	}
	return d, nil
}
