// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the zerolog logger used for --debug diagnostics.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Setup returns a console-format logger writing to out. When debug is false
// the level is warn, so normal runs stay quiet on stderr.
func Setup(out io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: out, NoColor: true}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
