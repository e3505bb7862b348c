package docx

import (
	"context"

	"github.com/pkg/errors"

	"github.com/backmassage/bookbinder/internal/config"
	"github.com/backmassage/bookbinder/internal/logging"
	"github.com/backmassage/bookbinder/internal/resolve"
)

// Merger concatenates section documents structurally: the first resolved
// section becomes the in-memory base and every later section's block-level
// body content is appended to it in order.
type Merger struct{}

// Name identifies the merger in progress output.
func (Merger) Name() string { return "structural merge (docx)" }

// Merge assembles the resolved sections into cfg.OutputPath. The base
// document's own section properties stay last so page setup is preserved.
// The context is checked between sections; on any error no output survives
// (Save removes partial files, the orchestrator removes completed ones).
func (Merger) Merge(ctx context.Context, cfg *config.Config, log *logging.Logger, secs []resolve.Section) error {
	if len(secs) == 0 {
		return errors.New("no sections to merge")
	}

	base, err := Open(secs[0].Path)
	if err != nil {
		return errors.Wrapf(err, "section %q", secs[0].Label)
	}
	log.Debug(cfg.Verbose, "Base document: %s (%d blocks)", secs[0].Path, len(base.blocks()))

	// Keep the trailing section properties aside; every append goes before it.
	sect := base.sectPr()
	if sect != nil {
		base.body.RemoveChild(sect)
	}

	insertFrontMatter(base, cfg, secs[0].Label)

	for _, sec := range secs[1:] {
		if err := ctx.Err(); err != nil {
			return err
		}
		src, err := Open(sec.Path)
		if err != nil {
			return errors.Wrapf(err, "section %q", sec.Label)
		}
		if cfg.SectionHeadings {
			base.body.AddChild(headingParagraph(sec.Label))
		}
		blocks := src.blocks()
		for _, el := range blocks {
			base.body.AddChild(el)
		}
		log.Debug(cfg.Verbose, "Appended section %q (%d blocks)", sec.Label, len(blocks))
	}

	if sect != nil {
		base.body.AddChild(sect)
	}

	return base.Save(cfg.OutputPath)
}

// insertFrontMatter prepends the generated TOC block and the first section's
// heading to the base body, in that order.
func insertFrontMatter(base *Document, cfg *config.Config, firstLabel string) {
	idx := 0
	if cfg.IncludeTOC {
		for _, el := range tocBlock() {
			base.body.InsertChildAt(idx, el)
			idx++
		}
	}
	if cfg.SectionHeadings {
		base.body.InsertChildAt(idx, headingParagraph(firstLabel))
	}
}
