// Package ppmap holds the CLI entry point shared by the ppmap binary and
// the acceptance tests.
package ppmap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/schmitthub/ppmap/internal/cmd/factory"
	"github.com/schmitthub/ppmap/internal/cmd/root"
	"github.com/schmitthub/ppmap/internal/cmdutil"
	"github.com/schmitthub/ppmap/internal/iostreams"
	"github.com/schmitthub/ppmap/internal/logger"
	"github.com/schmitthub/ppmap/internal/signals"
	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = ""
)

const (
	exitOk    = 0
	exitError = 1
	exitUsage = 2
)

// Main is the entry point for the ppmap CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	ctx, stop := signals.InterruptContext(context.Background())
	defer stop()

	f := factory.New(Version, Commit)
	return run(ctx, f, os.Args[1:])
}

func run(ctx context.Context, f *cmdutil.Factory, args []string) int {
	rootCmd, err := root.NewCmdRoot(f, Version, BuildDate)
	if err != nil {
		fmt.Fprintf(f.IOStreams.ErrOut, "failed to create root command: %s\n", err)
		return exitError
	}

	rootCmd.SetArgs(args)
	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		return printError(f.IOStreams, cmd, err)
	}
	return exitOk
}

// printError renders err for the user and picks the exit code.
func printError(ios *iostreams.IOStreams, cmd *cobra.Command, err error) int {
	if errors.Is(err, cmdutil.SilentError) {
		return exitError
	}

	cs := ios.ColorScheme()
	fmt.Fprintf(ios.ErrOut, "%s %s\n", cs.Red("Error:"), err)

	if isUsageError(err) {
		cmdutil.PrintHelpHint(ios, cmd.CommandPath())
		return exitUsage
	}
	return exitError
}

func isUsageError(err error) bool {
	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) {
		return true
	}
	// cobra reports these as plain errors
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command ") ||
		strings.HasPrefix(msg, "accepts ") ||
		strings.HasPrefix(msg, "unknown flag")
}
