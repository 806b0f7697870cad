// Package matmul is a small laboratory for dense matrix multiplication —
// one reference kernel, one work-parallel kernel, and the harness that
// proves they agree to the last bit.
//
// 🚀 What is matmul?
//
//	A focused, testable library plus CLI that brings together:
//		• Dense primitives: row-major float64 matrices, safe accessors, text codec
//		• Sequential kernel: the triple-loop reference product with a pinned
//		  accumulation order
//		• Parallel kernel: one task per output cell over a fixed, reusable
//		  worker pool, scatter-writing through disjoint sub-slices
//		• Harness: randomized benchmark/compare runs that assert bit-exact
//		  agreement between both kernels
//
// ✨ Why choose matmul?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – disjoint-slot writes, explicit joins, in-code docs
//   - Deterministic by design – both kernels share one accumulation order,
//     so equality is exact, not approximate
//
// Under the hood, everything is organized under three packages:
//
//	matrix/     — Dense type, codec, sequential & parallel kernels, Pool
//	bench/      — benchmark/compare harness over randomized inputs
//	cmd/matmul/ — CLI front ends: single-shot runs and the benchmark driver
//
// Quick start:
//
//	a, _ := matrix.NewRandom(512, 640)
//	b, _ := matrix.NewRandom(640, 384)
//
//	pool, _ := matrix.NewPool(4)
//	defer pool.Close()
//
//	seq, _ := matrix.Mul(a, b)
//	par, _ := pool.Mul(a, b)
//	fmt.Println(matrix.Equal(seq, par)) // true — bit-for-bit
package matmul
