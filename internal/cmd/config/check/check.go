package check

import (
	"context"
	"fmt"

	"github.com/schmitthub/ppmap/internal/cmdutil"
	internalconfig "github.com/schmitthub/ppmap/internal/config"
	"github.com/schmitthub/ppmap/internal/iostreams"
	"github.com/spf13/cobra"
)

// CheckOptions holds options for the config check command.
type CheckOptions struct {
	IOStreams    *iostreams.IOStreams
	ConfigLoader func() *internalconfig.Loader
}

// NewCmdCheck creates the config check command.
func NewCmdCheck(f *cmdutil.Factory, runF func(context.Context, *CheckOptions) error) *cobra.Command {
	opts := &CheckOptions{
		IOStreams:    f.IOStreams,
		ConfigLoader: f.ConfigLoader,
	}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a ppmap configuration file",
		Long: `Loads the file given with --config and validates the generate settings.

Checks for:
  - YAML syntax and value types
  - Unknown or misspelled keys
  - A non-negative limit and group size
  - A prefix that is a valid C identifier`,
		Example: `  # Validate a configuration file
  ppmap --config ppmap.yaml config check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return checkRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func checkRun(_ context.Context, opts *CheckOptions) error {
	ios := opts.IOStreams
	loader := opts.ConfigLoader()

	if loader.Path() == "" {
		return cmdutil.FlagErrorf("no configuration file given; pass --config <file>")
	}
	ios.Logger.Debug().Str("path", loader.Path()).Msg("checking configuration")

	settings, err := loader.Load()
	if err != nil {
		ios.PrintFailure("Failed to load %s", loader.Path())
		fmt.Fprintf(ios.ErrOut, "  %s\n", err)
		return cmdutil.SilentError
	}

	if err := settings.MacroOptions().Validate(); err != nil {
		ios.PrintFailure("Invalid generate settings in %s", loader.Path())
		fmt.Fprintf(ios.ErrOut, "  %s\n", err)
		return cmdutil.SilentError
	}

	ios.PrintSuccess("%s is valid (limit %d, prefix %s)", loader.Path(), settings.Generate.Limit, settings.Generate.Prefix)
	return nil
}
