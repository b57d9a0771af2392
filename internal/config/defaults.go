package config

import (
	"github.com/schmitthub/ppmap/internal/macrogen"
	"github.com/spf13/viper"
)

// Config keys, as they appear in the YAML file.
const (
	KeyLimit      = "generate.limit"
	KeyPrefix     = "generate.prefix"
	KeyConstDecl  = "generate.const_decl"
	KeyGroupSize  = "generate.group_size"
	KeyLogFile    = "logging.file"
	KeyLogMaxSize = "logging.max_size_mb"
	KeyLogMaxAge  = "logging.max_age_days"
	KeyLogBackups = "logging.max_backups"
)

// DefaultSettings returns the settings used when nothing overrides them.
func DefaultSettings() *Settings {
	return &Settings{
		Generate: GenerateSettings{
			Limit:     macrogen.DefaultLimit,
			Prefix:    macrogen.DefaultPrefix,
			GroupSize: macrogen.DefaultGroupSize,
		},
		Logging: LoggingSettings{
			MaxSizeMB:  50,
			MaxAgeDays: 7,
			MaxBackups: 3,
		},
	}
}

// SetDefaults registers DefaultSettings on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault(KeyLimit, d.Generate.Limit)
	v.SetDefault(KeyPrefix, d.Generate.Prefix)
	v.SetDefault(KeyConstDecl, d.Generate.ConstDecl)
	v.SetDefault(KeyGroupSize, d.Generate.GroupSize)
	v.SetDefault(KeyLogFile, d.Logging.File)
	v.SetDefault(KeyLogMaxSize, d.Logging.MaxSizeMB)
	v.SetDefault(KeyLogMaxAge, d.Logging.MaxAgeDays)
	v.SetDefault(KeyLogBackups, d.Logging.MaxBackups)
}
