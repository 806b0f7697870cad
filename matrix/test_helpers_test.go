// SPDX-License-Identifier: MIT
// Package matrix_test: shared helpers for the matrix package test suite.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matmul/matrix"
)

// mustDense allocates a rows×cols Dense or fails the test immediately.
func mustDense(tb testing.TB, rows, cols int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return m
}

// fillDenseRand fills m with deterministic pseudo-random values so tests and
// benchmarks are reproducible without relying on NewRandom's unseeded source.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed)) // fixed seed → stable fixture
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// mustFromRows builds a Dense literal or fails the test immediately.
func mustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}

	return m
}
