package docs

import (
	"github.com/spf13/cobra"
)

// newTestRootCmd builds a small tree shaped like the ppmap CLI.
func newTestRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ppmap",
		Short: "Generate variadic PP_MAP preprocessor macros",
		Long:  "ppmap prints the C preprocessor block behind PP_MAP.",
	}
	root.PersistentFlags().BoolP("debug", "D", false, "Enable debug logging")

	gen := &cobra.Command{
		Use:     "generate",
		Short:   "Print the PP_MAP macro block",
		Example: "  ppmap generate --limit 128",
		RunE:    func(*cobra.Command, []string) error { return nil },
	}
	gen.Flags().IntP("limit", "l", 69, "Maximum number of arguments")
	gen.Flags().String("prefix", "VISIT_STRUCT", "Identifier prefix")

	cfg := &cobra.Command{Use: "config", Short: "Inspect configuration"}
	show := &cobra.Command{
		Use:   "show",
		Short: "Print effective settings",
		RunE:  func(*cobra.Command, []string) error { return nil },
	}
	hidden := &cobra.Command{
		Use:    "internal",
		Hidden: true,
		RunE:   func(*cobra.Command, []string) error { return nil },
	}
	cfg.AddCommand(show)

	root.AddCommand(gen, cfg, hidden)
	return root
}
