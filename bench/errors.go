// SPDX-License-Identifier: MIT
// Package bench: sentinel error set.

package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrBadConfig is returned by Run for an unusable configuration:
	// non-positive iterations, MinDim < 1, MinDim > MaxDim, or a nil pool.
	ErrBadConfig = errors.New("bench: invalid configuration")

	// ErrMismatch is returned when the sequential and parallel kernels
	// disagree on any iteration. The two kernels accumulate in the same
	// order, so their results must match exactly; a divergence is a defect
	// and aborts the run.
	ErrMismatch = errors.New("bench: sequential and parallel results differ")
)

// Operation name constants for unified error wrapping.
const (
	opRun = "Run"
)

// benchErrorf wraps err with an operation tag, preserving the original error
// via %w so that errors.Is/As keep matching the underlying sentinel.
func benchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
