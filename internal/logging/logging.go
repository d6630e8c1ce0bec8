// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the CLI diagnostics logger.
package logging

import (
	"io"

	charmlog "github.com/charmbracelet/log"
)

// New returns a logger for CLI diagnostics on out. Verbose lowers the
// level to debug. Pipeline progress does not go through here; it is
// plain writer output so scripts can parse it, while warnings and debug
// detail get level prefixes.
func New(out io.Writer, verbose bool) *charmlog.Logger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}

	return charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: false,
		Level:           level,
	})
}
