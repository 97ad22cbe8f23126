// Package cliscope wires the CLI entry point.
package cliscope

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/schmitthub/cliscope/internal/cmd/factory"
	"github.com/schmitthub/cliscope/internal/cmd/root"
	"github.com/schmitthub/cliscope/internal/cmdutil"
	"github.com/schmitthub/cliscope/internal/logger"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	BuildDate = ""
)

// Main is the entry point for the cliscope CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	f := factory.New(Version, BuildDate)

	rootCmd, err := root.NewCmdRoot(f, Version, BuildDate)
	if err != nil {
		fmt.Fprintf(f.IOStreams.ErrOut, "failed to create root command: %v\n", err)
		return 1
	}

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		var exitErr *cmdutil.ExitError
		switch {
		case errors.Is(err, cmdutil.SilentError):
			// Already reported
		case errors.As(err, &exitErr):
			return exitErr.Code
		default:
			var flagErr *cmdutil.FlagError
			if errors.As(err, &flagErr) && cmd != nil {
				fmt.Fprintln(f.IOStreams.ErrOut, cmd.UsageString())
			}
		}
		return 1
	}

	return 0
}
