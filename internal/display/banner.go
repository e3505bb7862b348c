// Package display provides the startup banner and human-readable formatting
// helpers for run summaries.
package display

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var bannerColor = color.New(color.FgHiMagenta, color.Bold)

// PrintBanner prints the ASCII art banner; colored when colors are enabled.
func PrintBanner() {
	bannerColor.Fprint(os.Stdout, ` ____              _    _     _           _
| __ )  ___   ___ | | _| |__ (_)_ __   __| | ___ _ __
|  _ \ / _ \ / _ \| |/ / '_ \| | '_ \ / _`+"`"+` |/ _ \ '__|
| |_) | (_) | (_) |   <| |_) | | | | | (_| |  __/ |
|____/ \___/ \___/|_|\_\_.__/|_|_| |_|\__,_|\___|_|
`)
	fmt.Fprintln(os.Stdout)
}
