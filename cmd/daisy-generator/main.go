// Package main provides the CLI entrypoint for daisy-generator.
//
// daisy-generator turns a compiled Heavy patch into a buildable Daisy
// firmware project:
//   - binds the patch's exposed parameters to the board's controls
//   - renders the C++ glue, the board header and the Makefile
//   - copies the patch sources and the static project files alongside
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "daisy-generator",
		Short: "Generate Daisy firmware projects from compiled Heavy patches",
		Long: `daisy-generator binds a compiled Heavy patch to a Daisy board.

It writes a "daisy" directory holding the patch sources, a board header,
the generated HeavyDaisy_<name>.cpp glue and a Makefile for libDaisy.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(a.genCmd())
	root.AddCommand(a.watchCmd())
	root.AddCommand(a.boardsCmd())
	root.AddCommand(a.headerCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
