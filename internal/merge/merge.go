// Package merge selects the document assembly backend. Word automation and
// the structural DOCX merge are interchangeable strategies behind one Merger
// contract; the policy here decides which one a run gets.
package merge

import (
	"context"

	"github.com/pkg/errors"

	"github.com/backmassage/bookbinder/internal/config"
	"github.com/backmassage/bookbinder/internal/docx"
	"github.com/backmassage/bookbinder/internal/logging"
	"github.com/backmassage/bookbinder/internal/resolve"
	"github.com/backmassage/bookbinder/internal/word"
)

// Merger combines resolved section documents into one output document.
// Implementations must overwrite an existing output and leave nothing behind
// on failure.
type Merger interface {
	Name() string
	Merge(ctx context.Context, cfg *config.Config, log *logging.Logger, secs []resolve.Section) error
}

// Select applies the method policy:
//
//   - word: Word automation or a fatal error — never a silent fallback.
//   - docx: always the structural merge, Word availability is not consulted.
//   - auto: Word automation when available, otherwise fall back to the
//     structural merge with a logged warning naming the reason.
func Select(cfg *config.Config, log *logging.Logger) (Merger, error) {
	return selectWith(cfg, log, word.Available)
}

// selectWith is Select with the availability probe injected for tests.
func selectWith(cfg *config.Config, log *logging.Logger, probe func() error) (Merger, error) {
	switch cfg.Method {
	case config.MethodWord:
		if err := probe(); err != nil {
			return nil, errors.Wrap(err, "method 'word' requested")
		}
		return word.Merger{}, nil
	case config.MethodDocx:
		return docx.Merger{}, nil
	case config.MethodAuto:
		if err := probe(); err != nil {
			log.Warn("Word automation unavailable (%v); falling back to the structural merge", err)
			return docx.Merger{}, nil
		}
		return word.Merger{}, nil
	default:
		return nil, errors.Errorf("unknown method %q", cfg.Method)
	}
}
