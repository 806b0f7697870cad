// SPDX-License-Identifier: MIT
// Package matrix: work-parallel matrix product kernel.
//
// Decomposition: exactly one independent task per output cell. Each task
// computes the identical ascending-k dot product as the sequential kernel
// and writes its scalar result through a one-element sub-slice of the shared
// output buffer. The sub-slices are carved with full slice expressions
// (data[idx : idx+1 : idx+1]) before submission, so no task can address any
// cell but its own: the disjoint-slot invariant is enforced by construction
// rather than asserted by convention, and no per-cell locking or atomics
// are needed. The output buffer is scatter-only — written once per slot,
// never read by any task — and the single required synchronization point is
// the join over all tasks before the result is handed back.

package matrix

import (
	"fmt"
	"sync"
)

// Mul performs the parallel matrix multiplication C = A × B on the pool.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows);
//     allocate the zero-initialized result buffer.
//   - Stage 2: submit rows×cols cell tasks; each receives its own disjoint
//     one-element destination slice and accumulates Σ_{k asc} a[i,k]*b[k,j]
//     into a scalar before the single write.
//   - Stage 3: join — the call returns only after every task completed.
//
// Behavior highlights:
//   - Bit-identical to Mul: the per-cell accumulation order is independent
//     of which worker runs the task or in what wall-clock order, so the
//     parallel result equals the sequential result exactly.
//   - Inputs are read-only shared state for the duration of the call and
//     must not be mutated while the call is outstanding.
//   - Zero cases: if the result has no cells (rows==0 or cols==0) or the
//     pool has zero workers, no tasks are submitted and the pre-zeroed,
//     correctly-dimensioned buffer is returned immediately — no deadlock
//     for any pool size from 0 up to heavy oversubscription.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c); never aliases an input buffer.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrPoolClosed when the pool was shut down before the call.
//   - ErrTaskPanic when any task panicked; the join still completes first,
//     so a partially-filled matrix is never returned as success.
//
// Determinism:
//   - Per-cell ascending-k accumulation; scheduling order does not affect
//     the result.
//
// Complexity:
//   - Time O(r*n*c) work across workers, Space O(r*c).
func (p *Pool) Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	// Pre-allocate and zero-initialize the shared result buffer so that any
	// unwritten slot is a defined 0.0 rather than arbitrary memory.
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	// Degenerate calls complete without touching the pool.
	if rows == 0 || cols == 0 || p.workers == 0 {
		return res, nil
	}
	if p.isClosed() {
		return nil, matrixErrorf(opMulParallel, ErrPoolClosed)
	}

	// Fast path detection: *Dense operands let tasks read flat slices; any
	// other implementation is read through At in the identical k order.
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	fast := okA && okB

	// Per-call join state and first-panic collector.
	var (
		join  sync.WaitGroup
		mu    sync.Mutex
		fatal error
	)
	join.Add(rows * cols) // one slot per cell task, counted before submission

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Carve this task's exclusive one-element write window. The
			// full slice expression pins len == cap == 1, so the task
			// cannot reach any neighboring cell even via append.
			idx := i*cols + j
			cell := res.data[idx : idx+1 : idx+1]
			row, col := i, j

			p.tasks <- func() {
				defer join.Done()
				// A panicking task must not vanish: record the first one
				// and let the join complete so the caller can fail the
				// whole call instead of receiving a partial result.
				defer func() {
					if r := recover(); r != nil {
						mu.Lock()
						if fatal == nil {
							fatal = fmt.Errorf("cell (%d,%d): %w: %v", row, col, ErrTaskPanic, r)
						}
						mu.Unlock()
					}
				}()

				// Identical dot product as the sequential kernel: scalar
				// accumulator, strictly ascending k, whole row of a and
				// whole column of b.
				sum := ZeroSum
				if fast {
					rowA := row * inner
					for k := 0; k < inner; k++ {
						sum += da.data[rowA+k] * db.data[k*cols+col]
					}
				} else {
					var av, bv float64
					for k := 0; k < inner; k++ {
						av, _ = a.At(row, k) // bounds validated; errors not expected
						bv, _ = b.At(k, col)
						sum += av * bv
					}
				}
				cell[0] = sum // the single scatter write for this slot
			}
		}
	}

	// Mandatory barrier: hand the result back only once every submitted
	// task has completed and written its slot.
	join.Wait()
	if fatal != nil {
		return nil, matrixErrorf(opMulParallel, fatal)
	}

	return res, nil
}

// MulParallel is a convenience form of (*Pool).Mul that builds an ephemeral
// pool of `workers` goroutines for a single call and tears it down before
// returning. The reusable-Pool form is canonical — front ends that multiply
// repeatedly construct one Pool up front so its cost stays out of measured
// regions — but single-shot callers get identical semantics here.
//
// Errors: ErrInvalidWorkers for negative counts; otherwise as (*Pool).Mul.
// A workers value of 0 returns the pre-zeroed, correctly-dimensioned result
// immediately (zero tasks are ever submitted).
func MulParallel(a, b Matrix, workers int) (Matrix, error) {
	pool, err := NewPool(workers)
	if err != nil {
		return nil, err // already tagged by NewPool
	}
	defer pool.Close()

	return pool.Mul(a, b)
}
