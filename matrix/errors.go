// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or cols). Zero dimensions are legal: a 0×c or r×0 matrix is a
	// well-formed value with an empty backing slice.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands (Mul where a.Cols != b.Rows) or a backing slice whose length
	// disagrees with the stated rows*cols at construction.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrParse signals a malformed textual matrix representation: a ragged
	// row (token count differs from the first row's) or a token that is not
	// a valid floating-point literal. Wrapped errors carry line/token
	// context; the sentinel itself stays matchable via errors.Is.
	ErrParse = errors.New("matrix: malformed matrix text")

	// ErrInvalidWorkers is returned when a negative worker count is
	// requested for a Pool. Zero workers is a legal degenerate pool that
	// executes nothing (see Pool and MulParallel docs).
	ErrInvalidWorkers = errors.New("matrix: negative worker count")

	// ErrPoolClosed indicates that a parallel multiply was attempted on a
	// Pool after Close. Submitting to a closed pool is a programmer error
	// and is surfaced instead of deadlocking or panicking.
	ErrPoolClosed = errors.New("matrix: pool is closed")

	// ErrTaskPanic is returned by a parallel multiply when one of its cell
	// tasks panicked. The join still completes before the error is
	// returned, so a partially-filled result is never handed back as
	// success. The wrapped message carries the recovered panic value.
	ErrTaskPanic = errors.New("matrix: worker task panicked")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opMulParallel = "MulParallel"
	opEqual       = "Equal"
	opParse       = "ParseDense"
	opParsePair   = "ParsePair"
	opRandom      = "NewRandom"
	opPool        = "NewPool"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so that errors.Is/As keep matching the underlying sentinel.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
