// SPDX-License-Identifier: MIT
package cmd

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/ratsolve/gauss"
	"github.com/katalvlaran/ratsolve/internal/config"
	"github.com/katalvlaran/ratsolve/internal/render"
	"github.com/katalvlaran/ratsolve/internal/sysfile"
	"github.com/katalvlaran/ratsolve/matrix"
	"github.com/spf13/cobra"
)

var (
	// ErrInconsistent is returned after an inconsistent system was reported.
	ErrInconsistent = errors.New("ratsolve: system has no solution")

	// ErrBadBind is returned for a malformed --bind value.
	ErrBadBind = errors.New("ratsolve: --bind expects COL=VALUE")
)

type solveOptions struct {
	format string
	binds  []string
	verify bool
}

func newSolveCmd(g *globalOptions) *cobra.Command {
	o := &solveOptions{}
	c := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve the system in a YAML or TOML file",
		Long: `Solve reads matrix and column from FILE and prints the solution.

Free columns of a parametric family can be bound with --bind COL=VALUE
(repeatable, e.g. --bind 2=1/3); the evaluated vector is printed too.
Unique or fully bound solutions are re-multiplied against the system
when verification is enabled.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, g, o, args[0])
		},
	}
	c.Flags().StringVar(&o.format, "format", "", "output format: text or json (default from config)")
	c.Flags().StringArrayVar(&o.binds, "bind", nil, "bind a free column, COL=VALUE")
	c.Flags().BoolVar(&o.verify, "verify", false, "check A·x == b for concrete solutions (default from config)")

	return c
}

func runSolve(cmd *cobra.Command, g *globalOptions, o *solveOptions, path string) error {
	cfg, logger, err := g.loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = strings.ToLower(o.format)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("verify") {
		cfg.Solver.Verify = o.verify
	}
	params, err := parseBinds(o.binds)
	if err != nil {
		return err
	}

	doc, err := sysfile.Load(path)
	if err != nil {
		return err
	}
	a, b, err := doc.System()
	if err != nil {
		return err
	}
	logger.Info("system loaded", "name", doc.Name, "rows", a.Rows(), "cols", a.Cols())

	res := render.Result{Name: doc.Name}
	rep, err := gauss.SolveReport(a, b, gauss.WithLogger(logger))
	switch {
	case errors.Is(err, gauss.ErrNoSolution):
		if perr := printResult(cmd, cfg, res); perr != nil {
			return perr
		}
		return ErrInconsistent
	case err != nil:
		return err
	}
	res.Report = rep

	if len(params) > 0 || rep.Solution.IsUnique() {
		x, err := rep.Solution.Evaluate(params)
		if err != nil {
			return err
		}
		if len(params) > 0 {
			res.Values = x
		}
		if cfg.Solver.Verify {
			if err := gauss.Verify(a, x, b); err != nil {
				return err
			}
			logger.Info("solution verified", "name", doc.Name)
		}
	}

	return printResult(cmd, cfg, res)
}

func printResult(cmd *cobra.Command, cfg *config.Config, res render.Result) error {
	if cfg.Output.Format == config.FormatJSON {
		return render.JSON(cmd.OutOrStdout(), res)
	}

	return render.NewPrinter(cmd.OutOrStdout(), cfg.Output.Color).Text(res)
}

// parseBinds turns ["2=1/3", "4=-1"] into {2: 1/3, 4: -1}.
func parseBinds(binds []string) (map[int]*big.Rat, error) {
	params := make(map[int]*big.Rat, len(binds))
	for _, bind := range binds {
		colText, valText, ok := strings.Cut(bind, "=")
		if !ok {
			return nil, fmt.Errorf("%q: %w", bind, ErrBadBind)
		}
		col, err := strconv.Atoi(strings.TrimSpace(colText))
		if err != nil || col < 0 {
			return nil, fmt.Errorf("%q: bad column: %w", bind, ErrBadBind)
		}
		val, err := matrix.Parse(valText)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", bind, err)
		}
		if _, dup := params[col]; dup {
			return nil, fmt.Errorf("%q: column %d bound twice: %w", bind, col, ErrBadBind)
		}
		params[col] = val
	}

	return params, nil
}
