// SPDX-License-Identifier: MIT

// Package bench is the benchmark/compare harness for the matrix multiply
// kernels.
//
// Each iteration draws random dimensions, builds two random operands, runs
// the sequential kernel and the pool-backed parallel kernel on the same
// inputs, verifies that the two results are bit-for-bit identical, and
// records both wall-clock durations. After the configured number of
// iterations the harness reports every sample plus the mean duration per
// kernel.
//
// The harness never constructs worker pools itself: the caller builds one
// Pool up front and passes it in, so pool startup is never charged to the
// measured work.
//
// A divergence between the two kernels is a defect, not a measurement:
// Run stops immediately with ErrMismatch.
package bench
