// Package word drives Microsoft Word's COM automation interface to assemble
// the combined book with full layout fidelity: pagination, images, headers
// and footers survive because Word itself performs every insert.
//
// The automation bridge only exists on Windows with Word installed;
// [Available] probes for it and everything else returns [ErrUnsupportedOS]
// elsewhere. One Word process is owned exclusively for the duration of a
// single merge and released on every path.
package word

import (
	"context"

	"github.com/pkg/errors"

	"github.com/backmassage/bookbinder/internal/config"
	"github.com/backmassage/bookbinder/internal/logging"
	"github.com/backmassage/bookbinder/internal/resolve"
)

// Sentinel errors explaining why the native method cannot run.
var (
	ErrUnsupportedOS    = errors.New("Word automation is only available on Windows")
	ErrWordNotInstalled = errors.New("Microsoft Word is not installed (Word.Application is not registered)")
)

// Merger assembles the combined book by remote-controlling Word: a fresh
// document is created, and each section file is inserted at the end of the
// story in catalog order.
type Merger struct{}

// Name identifies the merger in progress output.
func (Merger) Name() string { return "Microsoft Word automation" }

// Merge drives one Word instance to produce cfg.OutputPath from the resolved
// sections. Any automation failure is fatal; no partial output is valid.
func (Merger) Merge(ctx context.Context, cfg *config.Config, log *logging.Logger, secs []resolve.Section) error {
	if len(secs) == 0 {
		return errors.New("no sections to merge")
	}
	return compose(ctx, cfg, log, secs)
}
