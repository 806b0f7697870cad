// Package matrix_test contains unit tests for the textual matrix codec.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/stretchr/testify/require"
)

// TestMarshalTextFormat checks the line-oriented, space-separated rendering.
func TestMarshalTextFormat(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2.5}, {3, 4}}) // literal fixture

	require.Equal(t, "1 2.5\n3 4\n", matrix.MarshalText(m)) // one row per line, single spaces
}

// TestRoundTrip verifies ParseDense(MarshalText(M)) == M exactly.
func TestRoundTrip(t *testing.T) {
	m := mustDense(t, 7, 5)    // awkward, non-square shape
	fillDenseRand(t, m, 20240) // deterministic random fill

	decoded, err := matrix.ParseDense(matrix.MarshalText(m)) // encode then decode
	require.NoError(t, err)                                  // decoding succeeds
	require.True(t, matrix.Equal(m, decoded))                // bit-exact round trip
}

// TestRoundTripAwkwardValues exercises literals that stress float formatting.
func TestRoundTripAwkwardValues(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{0.1, 1e-300, -2.5},             // tiny magnitudes and negatives
		{123456789.123456789, 1e300, 0}, // large magnitudes and exact zero
	})

	decoded, err := matrix.ParseDense(matrix.MarshalText(m)) // encode then decode
	require.NoError(t, err)                                  // decoding succeeds
	require.True(t, matrix.Equal(m, decoded))                // %g literals are lossless
}

// TestParseDenseEmpty decodes an empty document as the 0×0 matrix.
func TestParseDenseEmpty(t *testing.T) {
	m, err := matrix.ParseDense("") // nothing to parse
	require.NoError(t, err)         // still a well-formed value
	require.Equal(t, 0, m.Rows())   // zero rows
	require.Equal(t, 0, m.Cols())   // zero columns
}

// TestParseDenseRagged rejects rows whose token count differs from the first row's.
func TestParseDenseRagged(t *testing.T) {
	_, err := matrix.ParseDense("1 2 3\n4 5\n")  // second row is one token short
	require.ErrorIs(t, err, matrix.ErrParse)     // structural defect surfaces as ErrParse
	require.Contains(t, err.Error(), "line 2")   // the message names the offending line
}

// TestParseDenseBadToken rejects tokens that are not float literals.
func TestParseDenseBadToken(t *testing.T) {
	_, err := matrix.ParseDense("1 2\n3 oops\n")  // non-numeric token
	require.ErrorIs(t, err, matrix.ErrParse)      // never silently coerced
	require.Contains(t, err.Error(), `"oops"`)    // the message quotes the token
}

// TestParsePair decodes an X-delimited two-matrix document.
func TestParsePair(t *testing.T) {
	doc := "1 2\n3 4\nX\n5 6\n7 8\n" // two 2×2 matrices around the delimiter

	a, b, err := matrix.ParsePair(doc) // decode both halves
	require.NoError(t, err)            // document is well-formed

	require.True(t, matrix.Equal(a, mustFromRows(t, [][]float64{{1, 2}, {3, 4}}))) // first half
	require.True(t, matrix.Equal(b, mustFromRows(t, [][]float64{{5, 6}, {7, 8}}))) // second half
}

// TestParsePairMissingDelimiter fails when no X line is present.
func TestParsePairMissingDelimiter(t *testing.T) {
	_, _, err := matrix.ParsePair("1 2\n3 4\n") // single matrix, no delimiter
	require.ErrorIs(t, err, matrix.ErrParse)    // expect ErrParse
}

// TestMarshalTextDegenerate serializes zero-size matrices to the empty string.
func TestMarshalTextDegenerate(t *testing.T) {
	m := mustDense(t, 0, 4)                       // 0×4 has no elements
	require.Equal(t, "", matrix.MarshalText(m))   // nothing to write

	m = mustDense(t, 4, 0)                        // 4×0 has no elements either
	require.Equal(t, "", matrix.MarshalText(m))   // nothing to write
}
