// Package config loads ppmap settings from defaults, an optional YAML file
// named with --config, and command-line flags.
package config

import (
	"github.com/schmitthub/ppmap/internal/logger"
	"github.com/schmitthub/ppmap/internal/macrogen"
)

// Settings is the effective configuration for a single invocation.
type Settings struct {
	Generate GenerateSettings `mapstructure:"generate" yaml:"generate"`
	Logging  LoggingSettings  `mapstructure:"logging" yaml:"logging"`
}

// GenerateSettings controls the emitted macro block.
type GenerateSettings struct {
	Limit     int    `mapstructure:"limit" yaml:"limit"`
	Prefix    string `mapstructure:"prefix" yaml:"prefix"`
	ConstDecl string `mapstructure:"const_decl" yaml:"const_decl"`
	GroupSize int    `mapstructure:"group_size" yaml:"group_size"`
}

// LoggingSettings controls the optional rotating log file.
type LoggingSettings struct {
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
}

// MacroOptions converts the generate settings into generator options.
func (s *Settings) MacroOptions() macrogen.Options {
	return macrogen.Options{
		Limit:     s.Generate.Limit,
		Prefix:    s.Generate.Prefix,
		ConstDecl: s.Generate.ConstDecl,
		GroupSize: s.Generate.GroupSize,
	}
}

// LoggingConfig converts the logging settings for the logger package.
func (s *Settings) LoggingConfig() *logger.LoggingConfig {
	return &logger.LoggingConfig{
		File:       s.Logging.File,
		MaxSizeMB:  s.Logging.MaxSizeMB,
		MaxAgeDays: s.Logging.MaxAgeDays,
		MaxBackups: s.Logging.MaxBackups,
	}
}
