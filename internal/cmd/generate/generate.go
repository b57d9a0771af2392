// Package generate provides the generate command.
package generate

import (
	"context"
	"fmt"

	"github.com/schmitthub/ppmap/internal/cmdutil"
	"github.com/schmitthub/ppmap/internal/config"
	"github.com/schmitthub/ppmap/internal/iostreams"
	"github.com/schmitthub/ppmap/internal/macrogen"
	"github.com/spf13/cobra"
)

// flagBindings maps config keys to the generate flags that override them.
var flagBindings = map[string]string{
	config.KeyLimit:     "limit",
	config.KeyPrefix:    "prefix",
	config.KeyConstDecl: "const-decl",
	config.KeyGroupSize: "group-size",
}

// GenerateOptions contains the options for the generate command.
type GenerateOptions struct {
	IOStreams    *iostreams.IOStreams
	ConfigLoader func() *config.Loader

	// Macro is resolved from defaults, --config and flags before running.
	Macro macrogen.Options
}

// NewCmdGenerate creates the generate command.
func NewCmdGenerate(f *cmdutil.Factory, runF func(context.Context, *GenerateOptions) error) *cobra.Command {
	opts := &GenerateOptions{
		IOStreams:    f.IOStreams,
		ConfigLoader: f.ConfigLoader,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the PP_MAP preprocessor macros",
		Long: `Prints C preprocessor definitions that map a macro over a variadic
argument list, for pasting into a visit_struct-style header.

The block contains a max_visitable_members constant, an argument counter,
an Nth-argument selector, one APPLYF macro per arity from 0 to --limit and
the PP_MAP entry point. Output goes to stdout and is identical for identical
arguments.`,
		Example: `  # Generate the stock block (limit 69)
  ppmap generate

  # Support up to 128 members
  ppmap generate --limit 128

  # Use a different namespace prefix
  ppmap generate -l 32 --prefix MY_LIB

  # Keep the argument lists on one line
  ppmap generate --group-size 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveOptions(cmd, opts); err != nil {
				return err
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return generateRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntP("limit", "l", macrogen.DefaultLimit, "Maximum number of variadic arguments PP_MAP supports")
	cmd.Flags().String("prefix", macrogen.DefaultPrefix, "Namespace prefix for every generated identifier")
	cmd.Flags().String("const-decl", "", "Declaration for max_visitable_members (default \"static <prefix>_CONSTEXPR const int\")")
	cmd.Flags().Int("group-size", macrogen.DefaultGroupSize, "List elements per line in the counter and selector macros (0 for one line)")

	cmd.SetFlagErrorFunc(cmdutil.FlagErrorFunc)

	return cmd
}

// resolveOptions merges defaults, the config file and changed flags, then
// validates the result. Nothing is written to stdout when this fails.
func resolveOptions(cmd *cobra.Command, opts *GenerateOptions) error {
	loader := opts.ConfigLoader()
	if err := loader.BindFlags(cmd.Flags(), flagBindings); err != nil {
		return err
	}

	settings, err := loader.Load()
	if err != nil {
		return cmdutil.FlagErrorWrap(err)
	}

	opts.Macro = settings.MacroOptions()
	if err := opts.Macro.Validate(); err != nil {
		return cmdutil.FlagErrorWrap(err)
	}
	return nil
}

func generateRun(ctx context.Context, opts *GenerateOptions) error {
	ios := opts.IOStreams

	ios.Logger.Debug().
		Int("limit", opts.Macro.Limit).
		Str("prefix", opts.Macro.Prefix).
		Int("group-size", opts.Macro.GroupSize).
		Msg("generating PP_MAP block")

	g, err := macrogen.New(opts.Macro)
	if err != nil {
		return cmdutil.FlagErrorWrap(err)
	}

	// An interrupted run leaves stdout empty.
	if ctx.Err() != nil {
		return fmt.Errorf("generate: %w", context.Cause(ctx))
	}

	n, err := g.WriteTo(ios.Out)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	ios.Logger.Debug().
		Int64("bytes", n).
		Int("apply-macros", opts.Macro.Limit+1).
		Msg("generated PP_MAP block")

	return nil
}
