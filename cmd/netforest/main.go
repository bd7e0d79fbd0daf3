package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/netforest/internal/cli"
	nferrors "github.com/matzehuels/netforest/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Raise the log level before the command's own pre-run attaches the logger.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "Error:", nferrors.UserMessage(err))
	}
	return err
}

// exitCode maps input problems to 2 and everything else to 1.
func exitCode(err error) int {
	switch nferrors.GetCode(err) {
	case nferrors.ErrCodeInvalidAddress, nferrors.ErrCodeInvalidNotation, nferrors.ErrCodeCircular,
		nferrors.ErrCodeInvalidInput, nferrors.ErrCodeInvalidFormat, nferrors.ErrCodeInvalidPath,
		nferrors.ErrCodeNotFound, nferrors.ErrCodeFileNotFound:
		return 2
	}
	return 1
}
