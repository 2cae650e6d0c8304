// Package main implements fdqueens, a small CLI that models and solves
// the n-queens problem over pkg/fdspace: one variable per row, pairwise
// diagonal exclusions, and a Distinct across columns, searched with the
// default FirstSmallestVar + BinarySplit + Propagation engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gitrdm/gofdspace/pkg/fdspace"
)

func newLogger(level string) (*zap.Logger, error) {
	var zl zapcore.Level
	if err := zl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	zl, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zl.Sync()

	sp, queens := fdspace.NQueens(cfg.N)
	engine := fdspace.OneSolutionEngine().WithLogger(fdspace.NewLogger(zl))

	var status fdspace.Status
	var solved *fdspace.Space
	if cfg.NodeBudget > 0 {
		prune := fdspace.NewPrune(engine, cfg.NodeBudget)
		prune.Start(sp)
		solved, status = prune.Enter(sp)
	} else {
		engine.Start(sp)
		solved, status = engine.Enter(sp)
	}

	switch status.Kind {
	case fdspace.StatusSatisfiable:
		printSolution(cfg.N, extractSolution(solved, queens))
	case fdspace.StatusPruned:
		printPruned(cfg.N, cfg.NodeBudget)
	default:
		printUnsatisfiable(cfg.N)
	}
	return nil
}

func newRootCmd() (*cobra.Command, error) {
	root := &cobra.Command{
		Use:   "fdqueens",
		Short: "Solve finite-domain constraint problems with pkg/fdspace",
	}

	v := viper.New()
	solve := &cobra.Command{
		Use:   "solve",
		Short: "Solve the n-queens problem and print the first solution found",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}
	if err := bindConfigFlags(solve, v); err != nil {
		return nil, err
	}
	root.AddCommand(solve)
	return root, nil
}

func main() {
	cmd, err := newRootCmd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
