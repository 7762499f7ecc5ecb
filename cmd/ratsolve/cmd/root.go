// SPDX-License-Identifier: MIT
// Package cmd holds the ratsolve command tree.
package cmd

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/ratsolve/internal/config"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	cfgFile string
	verbose bool
}

// NewRootCmd builds a fresh command tree. Each call has its own flag state.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}
	root := &cobra.Command{
		Use:   "ratsolve",
		Short: "Exact rational linear system solver",
		Long: `ratsolve solves A·x = b over the rationals with Gaussian elimination
and full pivoting. No rounding ever happens: 9/2 stays 9/2.

Solutions are reported as unique values, or as a parametric family
expressed in the free columns. Systems are read from YAML or TOML files.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&g.cfgFile, "config", "", "config file (TOML, default: built-in defaults)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log every elimination step to stderr")

	root.AddCommand(newSolveCmd(g), newVersionCmd())

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig reads the config file and builds the stderr logger. -v forces
// debug level.
func (g *globalOptions) loadConfig(stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(g.cfgFile)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.SlogLevel()
	if g.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return cfg, logger, nil
}
