// Package matrix_test contains micro-benchmarks for the sequential and
// parallel product kernels.
//
// Run with:
//
//	go test -bench=. -benchmem ./matrix
package matrix_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/katalvlaran/matmul/matrix"
)

// sink prevents the compiler from eliding benchmarked results.
var sink matrix.Matrix

// benchSizes are the square dimensions exercised by every benchmark below.
var benchSizes = []int{16, 64, 128, 256}

// benchOperands builds a deterministic n×n pair shared by one sub-benchmark.
func benchOperands(b *testing.B, n int) (*matrix.Dense, *matrix.Dense) {
	b.Helper()
	left := mustDense(b, n, n)
	right := mustDense(b, n, n)
	fillDenseRand(b, left, int64(n))
	fillDenseRand(b, right, int64(n)+1)

	return left, right
}

// BenchmarkMul measures the sequential kernel across square sizes.
func BenchmarkMul(b *testing.B) {
	for _, n := range benchSizes {
		a, m := benchOperands(b, n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				res, err := matrix.Mul(a, m)
				if err != nil {
					b.Fatalf("Mul: %v", err)
				}
				sink = res
			}
		})
	}
}

// BenchmarkPoolMul measures the parallel kernel on a reused pool across
// square sizes and worker counts.
func BenchmarkPoolMul(b *testing.B) {
	for _, workers := range []int{1, 2, 4, runtime.NumCPU()} {
		pool, err := matrix.NewPool(workers)
		if err != nil {
			b.Fatalf("NewPool(%d): %v", workers, err)
		}

		for _, n := range benchSizes {
			a, m := benchOperands(b, n)

			b.Run(fmt.Sprintf("w=%d/n=%d", workers, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					res, err := pool.Mul(a, m)
					if err != nil {
						b.Fatalf("Pool.Mul: %v", err)
					}
					sink = res
				}
			})
		}

		pool.Close()
	}
}

// BenchmarkMulParallelEphemeral measures the convenience form that builds
// and tears down a pool per call, quantifying the reuse advantage.
func BenchmarkMulParallelEphemeral(b *testing.B) {
	for _, n := range benchSizes {
		a, m := benchOperands(b, n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				res, err := matrix.MulParallel(a, m, matrix.DefaultWorkers)
				if err != nil {
					b.Fatalf("MulParallel: %v", err)
				}
				sink = res
			}
		})
	}
}
