// SPDX-License-Identifier: MIT

// Package matrix: domain types for dense numeric computations.
// This file intentionally contains ONLY the public Matrix interface; errors
// and validators live in dedicated files (errors.go, validators.go) per the
// global conventions.

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Implementations store dimensions immutably after construction; only
// element values may change via Set. Each method enforces bounds checking
// and returns clear errors on misuse.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
