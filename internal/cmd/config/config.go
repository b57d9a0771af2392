package config

import (
	"github.com/schmitthub/ppmap/internal/cmd/config/check"
	"github.com/schmitthub/ppmap/internal/cmd/config/show"
	"github.com/schmitthub/ppmap/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		Long:  `Commands for inspecting and validating a ppmap configuration file passed with --config.`,
	}

	cmd.AddCommand(check.NewCmdCheck(f, nil))
	cmd.AddCommand(show.NewCmdShow(f, nil))

	return cmd
}
