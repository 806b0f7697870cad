// SPDX-License-Identifier: MIT
// Command matmul multiplies dense matrices with the sequential kernel, the
// pool-parallel kernel, or both, and drives the compare benchmark.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

const svcName = "matmul"

// config carries process-level defaults; command flags override every field.
type config struct {
	LogLevel   string `env:"MATMUL_LOG_LEVEL"  envDefault:"info"`
	Workers    int    `env:"MATMUL_WORKERS"    envDefault:"4"`
	Iterations int    `env:"MATMUL_ITERATIONS" envDefault:"1000"`
	MinDim     int    `env:"MATMUL_MIN_DIM"    envDefault:"500"`
	MaxDim     int    `env:"MATMUL_MAX_DIM"    envDefault:"1000"`
}

func main() {
	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load configuration : %s", err.Error())
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		log.Fatalf("failed to parse log level: %s", err.Error())
	}
	// Logs go to stderr so result matrices on stdout stay machine-readable.
	logHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(logHandler)
	slog.SetDefault(logger)

	if err := newRootCmd(cfg, logger).Execute(); err != nil {
		logger.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree.
func newRootCmd(cfg config, logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           svcName,
		Short:         "Dense matrix multiplication with sequential and pool-parallel kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(cfg, logger))
	root.AddCommand(newBenchCmd(cfg, logger))

	return root
}
