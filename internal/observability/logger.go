// Package observability wires up logging for the command-line shell. The
// rule-set core itself never logs.
package observability

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the console logger the CLI logs through. Without verbose
// only warnings and errors surface, keeping stdout output clean for
// scripted use.
func NewLogger(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "kirby").Logger()
}
