// Package show provides the config show command.
package show

import (
	"context"

	"github.com/schmitthub/ppmap/internal/cmdutil"
	internalconfig "github.com/schmitthub/ppmap/internal/config"
	"github.com/schmitthub/ppmap/internal/iostreams"
	"github.com/spf13/cobra"
)

// ShowOptions holds options for the config show command.
type ShowOptions struct {
	IOStreams    *iostreams.IOStreams
	ConfigLoader func() *internalconfig.Loader
}

// NewCmdShow creates the config show command.
func NewCmdShow(f *cmdutil.Factory, runF func(context.Context, *ShowOptions) error) *cobra.Command {
	opts := &ShowOptions{
		IOStreams:    f.IOStreams,
		ConfigLoader: f.ConfigLoader,
	}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Long: `Prints the settings generate would start from: built-in defaults merged
with the file given by --config. Flags passed to generate still win over these.`,
		Example: `  # Show built-in defaults
  ppmap config show

  # Show defaults merged with a file
  ppmap --config ppmap.yaml config show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return showRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func showRun(_ context.Context, opts *ShowOptions) error {
	settings, err := opts.ConfigLoader().Load()
	if err != nil {
		return err
	}

	out, err := internalconfig.MarshalYAML(settings)
	if err != nil {
		return err
	}

	_, err = opts.IOStreams.Out.Write(out)
	return err
}
