//go:build !windows

package word

import (
	"context"

	"github.com/backmassage/bookbinder/internal/config"
	"github.com/backmassage/bookbinder/internal/logging"
	"github.com/backmassage/bookbinder/internal/resolve"
)

// Available reports whether Word automation can run on this platform.
func Available() error { return ErrUnsupportedOS }

func compose(context.Context, *config.Config, *logging.Logger, []resolve.Section) error {
	return ErrUnsupportedOS
}
