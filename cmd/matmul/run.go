// SPDX-License-Identifier: MIT
// Command matmul: the `run` subcommand — one multiply, one result.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matmul/bench"
	"github.com/katalvlaran/matmul/matrix"
)

// Execution modes for `run`.
const (
	modeSequential = "sequential"
	modeParallel   = "parallel"
	modeBoth       = "both"
)

// runOptions are the `run` flag values.
type runOptions struct {
	mode    string
	rows    int
	inner   int
	cols    int
	input   string
	output  string
	workers int
}

// newRunCmd builds the `run` subcommand: multiply one pair of matrices,
// either loaded from an X-delimited file or generated at random.
func newRunCmd(cfg config, logger *slog.Logger) *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Multiply one pair of matrices and print the result",
		Long: `Multiply one pair of matrices and print the result to stdout (or --output).

Operands come from --input (a text file: first matrix, a line containing
only X, second matrix) or are generated uniformly at random with the
--rows/--inner/--cols shape. In mode "both" the sequential and parallel
kernels run concurrently and the results must match bit for bit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context(), logger, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", modeBoth, "kernel to run: sequential, parallel or both")
	cmd.Flags().IntVar(&opts.rows, "rows", 4, "rows of the left operand")
	cmd.Flags().IntVar(&opts.inner, "inner", 4, "shared inner dimension")
	cmd.Flags().IntVar(&opts.cols, "cols", 4, "cols of the right operand")
	cmd.Flags().StringVar(&opts.input, "input", "", "read both operands from an X-delimited file instead of generating them")
	cmd.Flags().StringVar(&opts.output, "output", "", "write the result to this file instead of stdout")
	cmd.Flags().IntVar(&opts.workers, "workers", cfg.Workers, "worker count for the parallel kernel")
	cmd.MarkFlagsMutuallyExclusive("input", "rows")
	cmd.MarkFlagsMutuallyExclusive("input", "inner")
	cmd.MarkFlagsMutuallyExclusive("input", "cols")

	return cmd
}

// runOnce loads or generates the operands, executes the selected kernel(s)
// and writes the result.
func runOnce(ctx context.Context, logger *slog.Logger, opts runOptions) error {
	a, b, err := loadOperands(opts)
	if err != nil {
		return err
	}
	logger.Info("operands ready",
		slog.Int("rows", a.Rows()),
		slog.Int("inner", a.Cols()),
		slog.Int("cols", b.Cols()),
		slog.String("mode", opts.mode))

	var res matrix.Matrix
	start := time.Now()
	switch opts.mode {
	case modeSequential:
		res, err = matrix.Mul(a, b)

	case modeParallel:
		res, err = matrix.MulParallel(a, b, opts.workers)

	case modeBoth:
		res, err = runBoth(ctx, a, b, opts.workers)

	default:
		return fmt.Errorf("unknown mode %q (want sequential, parallel or both)", opts.mode)
	}
	if err != nil {
		return err
	}
	logger.Info("multiply complete",
		slog.String("mode", opts.mode),
		slog.Duration("elapsed", time.Since(start)))

	return writeResult(opts.output, res)
}

// runBoth executes both kernels concurrently on the same operands and
// verifies exact agreement; a divergence is a defect and fails the command.
func runBoth(ctx context.Context, a, b matrix.Matrix, workers int) (matrix.Matrix, error) {
	pool, err := matrix.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	var seq, par matrix.Matrix
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var mulErr error
		seq, mulErr = matrix.Mul(a, b)

		return mulErr
	})
	g.Go(func() error {
		var mulErr error
		par, mulErr = pool.Mul(a, b)

		return mulErr
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	if !matrix.Equal(seq, par) {
		return nil, fmt.Errorf("%dx%d product: %w", seq.Rows(), seq.Cols(), bench.ErrMismatch)
	}

	return par, nil
}

// loadOperands reads the X-delimited pair file or draws random operands.
func loadOperands(opts runOptions) (matrix.Matrix, matrix.Matrix, error) {
	if opts.input != "" {
		raw, err := os.ReadFile(opts.input)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", opts.input, err)
		}
		a, b, err := matrix.ParsePair(string(raw))
		if err != nil {
			return nil, nil, fmt.Errorf("parse %s: %w", opts.input, err)
		}

		return a, b, nil
	}

	a, err := matrix.NewRandom(opts.rows, opts.inner)
	if err != nil {
		return nil, nil, err
	}
	b, err := matrix.NewRandom(opts.inner, opts.cols)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// writeResult serializes res to path, or stdout when path is empty.
func writeResult(path string, res matrix.Matrix) error {
	text := matrix.MarshalText(res)
	if path == "" {
		_, err := os.Stdout.WriteString(text)

		return err
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
