// SPDX-License-Identifier: MIT

// Package matrix offers dense row-major matrices with a sequential and a
// work-parallel multiplication kernel that agree bit-for-bit.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with O(1) bounds-checked accessors,
//     deep cloning, and exclusive buffer ownership.
//   - Mul: the reference product — one scalar accumulator per cell, summed
//     in strictly ascending inner-index order, which pins down the IEEE-754
//     rounding behavior.
//   - Pool and (*Pool).Mul: the same computation decomposed into one task
//     per output cell over a fixed-size reusable worker pool. Each task
//     owns a disjoint one-element sub-slice of the output, so the scatter
//     writes need no per-cell synchronization; a join over all tasks is the
//     single barrier. Because the per-cell accumulation order never
//     changes, the parallel result is bit-identical to the sequential one.
//   - A text codec (MarshalText/ParseDense/ParsePair) for the line-oriented
//     interchange format, including the "X"-delimited two-matrix documents
//     the CLI consumes.
//
// All failures are structural (bad shapes, malformed text) and are surfaced
// as package sentinel errors matched via errors.Is; nothing in this package
// retries, logs, or panics on user input.
//
// See the examples in this package and the bench package for usage patterns.
package matrix
