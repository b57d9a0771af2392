// Package loggertest provides test doubles for the logger package.
// TestLogger captures JSON log output so command tests can assert on the
// events a run produced.
package loggertest

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog"
)

// TestLogger satisfies iostreams.Logger. It wraps a private zerolog.Logger
// rather than embedding it, so only the leveled constructors are exposed.
type TestLogger struct {
	logger zerolog.Logger
	buf    *bytes.Buffer
}

// New creates a test logger that captures all levels to a buffer.
func New() *TestLogger {
	buf := &bytes.Buffer{}
	return &TestLogger{
		logger: zerolog.New(buf).Level(zerolog.DebugLevel),
		buf:    buf,
	}
}

// NewNop creates a test logger that discards all output.
func NewNop() *TestLogger {
	return &TestLogger{
		logger: zerolog.Nop(),
		buf:    &bytes.Buffer{},
	}
}

func (tl *TestLogger) Debug() *zerolog.Event { return tl.logger.Debug() }
func (tl *TestLogger) Info() *zerolog.Event  { return tl.logger.Info() }
func (tl *TestLogger) Warn() *zerolog.Event  { return tl.logger.Warn() }
func (tl *TestLogger) Error() *zerolog.Event { return tl.logger.Error() }

// Output returns captured log output as a string.
func (tl *TestLogger) Output() string { return tl.buf.String() }

// HasMessage reports whether any captured event carried msg.
func (tl *TestLogger) HasMessage(msg string) bool {
	return strings.Contains(tl.buf.String(), `"message":"`+msg+`"`)
}

// Reset clears captured output.
func (tl *TestLogger) Reset() { tl.buf.Reset() }
