package cmdutil

import (
	"github.com/schmitthub/ppmap/internal/logger"
)

// InitLogger sets up the logger with file logging if the config file asks
// for it. Falls back to console-only logging on any errors; the command
// itself reports config problems.
func InitLogger(f *Factory) {
	if f.ConfigLoader == nil || f.ConfigFile == "" {
		logger.Init(f.Debug)
		return
	}

	settings, err := f.ConfigLoader().Load()
	if err != nil {
		logger.Init(f.Debug)
		logger.Debug().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	if err := logger.InitWithFile(f.Debug, settings.LoggingConfig()); err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
