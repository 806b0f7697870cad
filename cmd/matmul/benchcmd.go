// SPDX-License-Identifier: MIT
// Command matmul: the `bench` subcommand — the compare benchmark driver.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matmul/bench"
	"github.com/katalvlaran/matmul/matrix"
)

// benchOptions are the `bench` flag values.
type benchOptions struct {
	iterations int
	minDim     int
	maxDim     int
	workers    int
}

// newBenchCmd builds the `bench` subcommand: repeatedly multiply random
// pairs with both kernels, verify agreement and report mean durations.
func newBenchCmd(cfg config, logger *slog.Logger) *cobra.Command {
	opts := benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the sequential and parallel kernels over random inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(logger, opts)
		},
	}

	cmd.Flags().IntVar(&opts.iterations, "iterations", cfg.Iterations, "number of compare-and-time rounds")
	cmd.Flags().IntVar(&opts.minDim, "min-dim", cfg.MinDim, "lower bound for random dimensions")
	cmd.Flags().IntVar(&opts.maxDim, "max-dim", cfg.MaxDim, "upper bound for random dimensions")
	cmd.Flags().IntVar(&opts.workers, "workers", cfg.Workers, "worker count for the parallel kernel")

	return cmd
}

// runBench constructs one pool for the whole run and hands off to bench.Run.
func runBench(logger *slog.Logger, opts benchOptions) error {
	pool, err := matrix.NewPool(opts.workers)
	if err != nil {
		return err
	}
	defer pool.Close()

	cfg := bench.Config{
		Iterations: opts.iterations,
		MinDim:     opts.minDim,
		MaxDim:     opts.maxDim,
		Progress: func(s bench.Sample) {
			logger.Info("iteration complete",
				slog.Int("iteration", s.Iteration),
				slog.Int("rows", s.Rows),
				slog.Int("inner", s.Inner),
				slog.Int("cols", s.Cols),
				slog.Duration("sequential", s.Sequential),
				slog.Duration("parallel", s.Parallel))
		},
	}

	logger.Info("benchmark starting",
		slog.Int("iterations", cfg.Iterations),
		slog.Int("min_dim", cfg.MinDim),
		slog.Int("max_dim", cfg.MaxDim),
		slog.Int("workers", pool.Workers()))

	sum, err := bench.Run(cfg, pool)
	if err != nil {
		return err
	}

	logger.Info("benchmark complete",
		slog.Int("iterations", len(sum.Samples)),
		slog.Int("workers", sum.Workers),
		slog.Duration("mean_sequential", sum.MeanSequential),
		slog.Duration("mean_parallel", sum.MeanParallel))

	return nil
}
