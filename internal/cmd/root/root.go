package root

import (
	configcmd "github.com/schmitthub/ppmap/internal/cmd/config"
	"github.com/schmitthub/ppmap/internal/cmd/generate"
	versioncmd "github.com/schmitthub/ppmap/internal/cmd/version"
	"github.com/schmitthub/ppmap/internal/cmdutil"
	"github.com/schmitthub/ppmap/internal/logger"
	"github.com/spf13/cobra"
)

// NewCmdRoot creates the root command for the ppmap CLI.
func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "ppmap",
		Short: "Generate variadic PP_MAP preprocessor macros",
		Long: `ppmap prints the C preprocessor block behind visit_struct's PP_MAP:
an argument counter, an Nth-argument selector, one APPLYF macro per arity
and the dispatching map macro. Paste the output into your header to change
the number of members a structure can expose.

Quick start:
  ppmap generate             # stock block, 69 members
  ppmap generate --limit 128 # raise the limit`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmdutil.InitLogger(f)

			logger.Debug().
				Str("version", f.Version).
				Str("config", f.ConfigFile).
				Bool("debug", f.Debug).
				Msg("ppmap starting")

			return nil
		},
		Version: version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&f.Debug, "debug", "D", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&f.ConfigFile, "config", "", "Read settings from this YAML file")

	cmd.SetVersionTemplate(versioncmd.Format(version, buildDate))
	cmd.SetFlagErrorFunc(cmdutil.FlagErrorFunc)

	cmd.AddCommand(generate.NewCmdGenerate(f, nil))
	cmd.AddCommand(configcmd.NewCmdConfig(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, buildDate))

	return cmd, nil
}
