// SPDX-License-Identifier: MIT
// Package bench: the Run harness comparing the two multiply kernels.

package bench

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/katalvlaran/matmul/matrix"
)

// Default configuration values used by ApplyDefaults for zero fields.
// They mirror the reference benchmark: 1000 iterations over dimensions
// drawn uniformly from [500, 1000].
const (
	DefaultIterations = 1000
	DefaultMinDim     = 500
	DefaultMaxDim     = 1000
)

// Config controls one harness run.
type Config struct {
	// Iterations is the number of compare-and-time rounds. Must be > 0.
	Iterations int

	// MinDim and MaxDim bound the three dimensions drawn per iteration:
	// the product computed is (rows×inner) by (inner×cols) with each of
	// rows, inner, cols uniform in [MinDim, MaxDim]. Requires
	// 1 <= MinDim <= MaxDim.
	MinDim int
	MaxDim int

	// Progress, when non-nil, is invoked once per iteration with the
	// freshly recorded Sample. It runs on the harness goroutine; a slow
	// callback slows the run but never skews the recorded durations.
	Progress func(Sample)
}

// ApplyDefaults fills zero-valued knobs with the reference configuration.
func (c *Config) ApplyDefaults() {
	if c.Iterations == 0 {
		c.Iterations = DefaultIterations
	}
	if c.MinDim == 0 {
		c.MinDim = DefaultMinDim
	}
	if c.MaxDim == 0 {
		c.MaxDim = DefaultMaxDim
	}
}

// validate rejects unusable configurations with plain ErrBadConfig context.
func (c Config) validate(pool *matrix.Pool) error {
	switch {
	case c.Iterations <= 0:
		return fmt.Errorf("iterations %d: %w", c.Iterations, ErrBadConfig)
	case c.MinDim < 1:
		return fmt.Errorf("min dim %d: %w", c.MinDim, ErrBadConfig)
	case c.MinDim > c.MaxDim:
		return fmt.Errorf("min dim %d > max dim %d: %w", c.MinDim, c.MaxDim, ErrBadConfig)
	case pool == nil:
		return fmt.Errorf("nil pool: %w", ErrBadConfig)
	}

	return nil
}

// Sample is the record of one iteration.
type Sample struct {
	Iteration  int           // 1-based iteration number
	Rows       int           // rows of the left operand and the result
	Inner      int           // shared inner dimension
	Cols       int           // cols of the right operand and the result
	Sequential time.Duration // wall-clock time of matrix.Mul
	Parallel   time.Duration // wall-clock time of (*matrix.Pool).Mul
}

// Summary aggregates a completed run.
type Summary struct {
	Samples        []Sample      // every recorded iteration, in order
	Workers        int           // concurrency bound of the pool used
	MeanSequential time.Duration // mean of Sample.Sequential
	MeanParallel   time.Duration // mean of Sample.Parallel
}

// equalFn is the result comparator; a variable so harness tests can inject
// a mismatch without breaking the kernels themselves.
var equalFn = matrix.Equal

// Run executes cfg.Iterations compare-and-time rounds against pool.
//
// Implementation:
//   - Stage 1: validate the configuration and pool (ErrBadConfig).
//   - Stage 2: per iteration — draw rows/inner/cols, build two random
//     operands, time matrix.Mul, time pool.Mul on the same inputs, verify
//     exact equality, record the Sample, invoke Progress if set.
//   - Stage 3: aggregate means over all samples.
//
// Behavior highlights:
//   - Operand construction and pool startup are never inside a timed region;
//     only the two kernel calls are measured.
//   - The first kernel divergence aborts the run with ErrMismatch carrying
//     the iteration number and dimensions.
//
// Returns: the Summary of all iterations, or a nil Summary with a non-nil
// error (ErrBadConfig, ErrMismatch, or a wrapped kernel error).
//
// Complexity: O(Iterations · rows·inner·cols) multiply work overall.
func Run(cfg Config, pool *matrix.Pool) (*Summary, error) {
	if err := cfg.validate(pool); err != nil {
		return nil, benchErrorf(opRun, err)
	}

	sum := &Summary{
		Samples: make([]Sample, 0, cfg.Iterations),
		Workers: pool.Workers(),
	}
	var totalSeq, totalPar time.Duration

	for iter := 1; iter <= cfg.Iterations; iter++ {
		rows := randDim(cfg.MinDim, cfg.MaxDim)
		inner := randDim(cfg.MinDim, cfg.MaxDim)
		cols := randDim(cfg.MinDim, cfg.MaxDim)

		a, err := matrix.NewRandom(rows, inner)
		if err != nil {
			return nil, benchErrorf(opRun, err)
		}
		b, err := matrix.NewRandom(inner, cols)
		if err != nil {
			return nil, benchErrorf(opRun, err)
		}

		start := time.Now() // timed region: sequential kernel only
		seq, err := matrix.Mul(a, b)
		seqDur := time.Since(start)
		if err != nil {
			return nil, benchErrorf(opRun, err)
		}

		start = time.Now() // timed region: parallel kernel only
		par, err := pool.Mul(a, b)
		parDur := time.Since(start)
		if err != nil {
			return nil, benchErrorf(opRun, err)
		}

		if !equalFn(seq, par) {
			return nil, benchErrorf(opRun, fmt.Errorf(
				"iteration %d (%dx%dx%d): %w", iter, rows, inner, cols, ErrMismatch))
		}

		s := Sample{
			Iteration:  iter,
			Rows:       rows,
			Inner:      inner,
			Cols:       cols,
			Sequential: seqDur,
			Parallel:   parDur,
		}
		sum.Samples = append(sum.Samples, s)
		totalSeq += seqDur
		totalPar += parDur

		if cfg.Progress != nil {
			cfg.Progress(s)
		}
	}

	n := time.Duration(len(sum.Samples))
	sum.MeanSequential = totalSeq / n
	sum.MeanParallel = totalPar / n

	return sum, nil
}

// randDim draws one dimension uniformly from [min, max].
func randDim(min, max int) int {
	return min + rand.IntN(max-min+1)
}
