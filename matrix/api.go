// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

import "fmt"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Deterministic: single allocation; no hidden work.
// Complexity: O(r*c) zero-init by the runtime.
//
// Note: Returns (*Dense, error) to surface ErrBadShape.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
//
// AI-Hints: Use as a neutral element in multiplication-law tests.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n) // O(1) alloc + O(n^2) zeroing
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0 // direct flat write; shape already validated
	}

	// Return the identity matrix.
	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	// Read shape once and call NewDense with the same dimensions.
	return NewDense(m.Rows(), m.Cols()) // errors (if any) bubble up
}

// FromRows builds a *Dense from a nested row-major literal.
// Stage 1 (Validate): every row must have the first row's length — ragged
// input fails with ErrDimensionMismatch (no silent truncation or padding).
// Stage 2 (Execute): copy rows into a fresh flat backing slice.
// An empty literal produces a well-formed 0×0 matrix.
// Complexity: O(r*c).
//
// AI-Hints: The literal is copied; mutating the input afterwards never
// affects the returned matrix.
func FromRows(rows [][]float64) (*Dense, error) {
	// Degenerate literal: zero rows means a 0×0 matrix.
	if len(rows) == 0 {
		return NewDense(0, 0)
	}

	// The first row fixes the column count for the whole literal.
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		// Every subsequent row must agree with the first row's width.
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		data = append(data, row...) // copy row into flat storage
	}

	// Adopt the freshly built slice; length invariant holds by construction.
	return NewDenseFrom(len(rows), cols, data)
}

// ---------- Equality ----------

// Equal reports whether a and b have identical dimensions and every element
// compares exactly equal (==). No epsilon tolerance is applied: the
// sequential and parallel multipliers use the identical accumulation order,
// so their results must match bit-for-bit and an exact comparison is the
// contract the test suite enforces.
//
// Behavior highlights:
//   - nil inputs: Equal(nil, nil) is true; nil vs non-nil is false.
//   - NaN elements compare unequal (IEEE-754 semantics of ==).
//
// Determinism: fixed flat (fast-path) or i→j (fallback) scan order.
// Complexity: O(r*c) worst case, early exit on first difference.
func Equal(a, b Matrix) bool {
	// Nil handling: two absent matrices are considered equal.
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	// Dimension check is part of equality, not an error condition.
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Fast path: *Dense with *Dense → single flat scan.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data { // deterministic 0..n-1
				if da.data[idx] != db.data[idx] {
					return false // first difference wins
				}
			}

			return true
		}
	}

	// Fallback: interface path with fixed i→j order.
	rows, cols := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // At is O(1); errors are not expected after shape validation
			bv, _ = b.At(i, j) // symmetric read
			if av != bv {
				return false
			}
		}
	}

	return true
}
