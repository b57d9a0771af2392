package cmdutil

import (
	"github.com/schmitthub/ppmap/internal/config"
	"github.com/schmitthub/ppmap/internal/iostreams"
)

// Factory provides shared dependencies for CLI commands.
// The struct defines what dependencies exist; internal/cmd/factory wires
// the real implementations. Commands copy the fields they need into their
// Options structs.
type Factory struct {
	// Configuration from persistent flags (set before command execution)
	ConfigFile string
	Debug      bool

	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	// IO streams for input/output (for testability)
	IOStreams *iostreams.IOStreams

	// ConfigLoader returns a fresh loader for ConfigFile. It is a closure so
	// it observes --config after flag parsing.
	ConfigLoader func() *config.Loader
}
