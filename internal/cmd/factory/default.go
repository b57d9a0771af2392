package factory

import (
	"os"

	"github.com/schmitthub/ppmap/internal/cmdutil"
	"github.com/schmitthub/ppmap/internal/config"
	"github.com/schmitthub/ppmap/internal/iostreams"
	"github.com/schmitthub/ppmap/internal/logger"
)

// New creates a fully-wired Factory.
// Called exactly once at the CLI entry point (internal/ppmap/cmd.go).
// Tests should NOT import this package; construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	ios := iostreams.NewIOStreams()
	ios.Logger = &logger.Log

	// Respect NO_COLOR for status lines on stderr
	if os.Getenv("NO_COLOR") != "" {
		ios.SetColorEnabled(false)
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: ios,
	}

	f.ConfigLoader = func() *config.Loader {
		return config.NewLoader(f.ConfigFile)
	}

	return f
}
