package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the fdqueens run configuration: board size, log verbosity,
// and the search node budget. It plays the role the teacher's
// SolverConfig/DefaultSolverConfig pair plays for minikanren's FD
// solver (pkg/minikanren/fd.go), but loaded through viper instead of
// being a plain struct literal, so it can be overridden by
// FDQUEENS_-prefixed environment variables as well as flags. No config
// file is read.
type Config struct {
	N          int
	LogLevel   string
	NodeBudget int
}

// DefaultConfig mirrors the teacher's DefaultSolverConfig shape: a
// function returning sane defaults rather than zero values.
func DefaultConfig() Config {
	return Config{
		N:          8,
		LogLevel:   "info",
		NodeBudget: 0,
	}
}

// bindConfigFlags registers the flags backing Config on cmd and binds
// them into v, so viper's precedence order (flag > env > default)
// applies uniformly.
func bindConfigFlags(cmd *cobra.Command, v *viper.Viper) error {
	def := DefaultConfig()
	cmd.Flags().Int("n", def.N, "board size (number of queens)")
	cmd.Flags().String("log-level", def.LogLevel, "log level: debug, info, warn, error")
	cmd.Flags().Int("node-budget", def.NodeBudget, "search node budget before pruning (0 = unlimited)")

	v.SetEnvPrefix("fdqueens")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, name := range []string{"n", "log-level", "node-budget"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// loadConfig reads the bound flags/env into a Config.
func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		N:          v.GetInt("n"),
		LogLevel:   v.GetString("log-level"),
		NodeBudget: v.GetInt("node-budget"),
	}
	if cfg.N < 2 {
		return cfg, fmt.Errorf("n must be at least 2, got %d", cfg.N)
	}
	return cfg, nil
}
