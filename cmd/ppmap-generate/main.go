// ppmap-generate is a standalone binary for printing the PP_MAP macro block.
// It provides the same functionality as 'ppmap generate' without the rest of
// the ppmap CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/schmitthub/ppmap/internal/cmd/factory"
	"github.com/schmitthub/ppmap/internal/cmd/generate"
	"github.com/schmitthub/ppmap/internal/cmdutil"
	"github.com/schmitthub/ppmap/internal/logger"
	"github.com/schmitthub/ppmap/internal/signals"
	"github.com/spf13/cobra"
)

// Build-time variables set by ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

const (
	exitOk    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(mainRun())
}

func mainRun() int {
	defer logger.CloseFileWriter()

	ctx, stop := signals.InterruptContext(context.Background())
	defer stop()

	return run(ctx, factory.New(Version, Commit), os.Args[1:])
}

func run(ctx context.Context, f *cmdutil.Factory, args []string) int {
	cmd := newCmd(f)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(f.IOStreams.ErrOut, "Error: %s\n", err)
		var flagErr *cmdutil.FlagError
		if errors.As(err, &flagErr) {
			cmdutil.PrintHelpHint(f.IOStreams, cmd.CommandPath())
			return exitUsage
		}
		return exitError
	}
	return exitOk
}

func newCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := generate.NewCmdGenerate(f, nil)
	cmd.Use = "ppmap-generate" // Override for standalone use
	cmd.Version = Version
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.PersistentFlags().BoolVarP(&f.Debug, "debug", "D", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&f.ConfigFile, "config", "", "Read settings from this YAML file")
	cmd.PersistentPreRun = func(*cobra.Command, []string) {
		cmdutil.InitLogger(f)
	}

	return cmd
}
