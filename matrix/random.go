// SPDX-License-Identifier: MIT
// Package matrix: random matrix construction.

package matrix

import "math/rand/v2"

// NewRandom returns a rows×cols Dense whose elements are independently drawn
// from a uniform distribution over [0, 1).
//
// Implementation:
//   - Stage 1: allocate via NewDense (ErrBadShape on negative dimensions).
//   - Stage 2: fill the flat backing slice in a single deterministic 0..n-1 loop.
//
// Behavior highlights:
//   - No seeding contract: determinism is intentionally NOT a property of
//     this constructor; it draws from the process-wide math/rand/v2 source.
//     Tests that need reproducibility build literals via FromRows instead.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewRandom(rows, cols int) (*Dense, error) {
	// Allocate zero-filled storage first; shape errors surface here.
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}

	// Fill every slot from the shared PCG source.
	for idx := range m.data { // fixed order; values are i.i.d. uniform [0,1)
		m.data[idx] = rand.Float64()
	}

	return m, nil
}
