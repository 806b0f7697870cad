// SPDX-License-Identifier: MIT
// Package matrix: sequential matrix product kernel.
//
// This kernel is the reference the parallel path must reproduce exactly.
// The accumulation order is part of the contract: each output cell is a
// single scalar accumulator summed over strictly ascending k. IEEE-754
// addition is not associative, so any reordering (blocking, vectorizing,
// zero-skipping) would legally change the last bits of the result and break
// the bit-for-bit equality the test suite asserts between both paths.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot-product summation.
const ZeroSum = 0.0

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Fixed i→j→k triple loop with one scalar accumulator per cell;
//     *Dense operands take a flat-indexed fast path, anything else goes
//     through At in the identical order.
//
// Behavior highlights:
//   - Accumulation is strictly ascending in k with no zero-skip, so the
//     rounding behavior is pinned down and shared with the parallel kernel.
//   - Pure function: allocates only the result; inputs are never mutated.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch —
//     incompatible shapes always fail, never truncate or pad).
//
// Determinism:
//   - Fixed loop order i→j→k; results are identical across runs and
//     bit-identical to the parallel kernel's.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense (zero-filled; correct as-is for empty inner dims).
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k      int // loop iterators (deterministic order)
		sum, av, bv  float64
		rowA, rowRes int // flat row offsets for the fast path
	)
	// Fast-path for two Dense matrices: same i→j→k order, flat indexing.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < rows; i++ {
				rowA = i * inner
				rowRes = i * cols
				for j = 0; j < cols; j++ {
					sum = ZeroSum // fresh scalar accumulator per cell
					for k = 0; k < inner; k++ {
						sum += da.data[rowA+k] * db.data[k*cols+j] // ascending k
					}
					res.data[rowRes+j] = sum // single write per cell
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop with the identical order.
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += av * bv // accumulate product in ascending k order
			}
			if err = res.Set(i, j, sum); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}
