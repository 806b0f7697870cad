// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseNegativeDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseNegativeDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)             // attempt to create with negative rows
	require.ErrorIs(t, err, matrix.ErrBadShape)  // expect ErrBadShape

	_, err = matrix.NewDense(5, -1)              // attempt to create with negative columns
	require.ErrorIs(t, err, matrix.ErrBadShape)  // expect ErrBadShape
}

// TestNewDenseZeroDimensions verifies that zero-size matrices are well-formed values.
func TestNewDenseZeroDimensions(t *testing.T) {
	m, err := matrix.NewDense(0, 3) // a 0×3 matrix is legal
	require.NoError(t, err)         // no error for zero rows
	require.Equal(t, 0, m.Rows())   // zero rows reported
	require.Equal(t, 3, m.Cols())   // columns preserved

	m, err = matrix.NewDense(4, 0) // a 4×0 matrix is legal
	require.NoError(t, err)        // no error for zero columns
	require.Equal(t, 4, m.Rows())  // rows preserved
	require.Equal(t, 0, m.Cols())  // zero columns reported
}

// TestNewDenseFromLengthInvariant ensures the backing slice length must equal rows*cols.
func TestNewDenseFromLengthInvariant(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})  // 3 values for a 2×2 shape
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)     // expect ErrDimensionMismatch

	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4}) // exact length is accepted
	require.NoError(t, err)                                    // construction succeeds
	v, err := m.At(1, 1)                                       // read the last element
	require.NoError(t, err)                                    // read succeeds
	require.Equal(t, 4.0, v)                                   // row-major order preserved
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4                    // define expected row and column counts
	m, err := matrix.NewDense(rows, cols) // create a Dense matrix of size 3x4
	require.NoError(t, err)               // assert no error on valid dimensions

	require.Equal(t, rows, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // assert Cols() equals expected cols
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // assert matrix creation succeeded

	_, err = m.At(-1, 0)                           // attempt At() with negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)  // expect ErrOutOfRange

	_, err = m.At(0, 2)                            // attempt At() with column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)  // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                        // attempt Set() with row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)  // expect ErrOutOfRange

	err = m.Set(0, -1, 4.56)                       // attempt Set() with negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)  // expect ErrOutOfRange
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3) // create a 2x3 Dense matrix
	require.NoError(t, err)         // ensure valid creation

	err = m.Set(1, 2, 7.89) // set element at row 1, column 2
	require.NoError(t, err) // assert Set() succeeded

	val, err := m.At(1, 2)      // retrieve the set element
	require.NoError(t, err)     // assert At() succeeded
	require.Equal(t, 7.89, val) // assert retrieved value matches set value
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // validate creation

	// initialize matrix elements to distinct values
	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone() // clone the matrix

	// modify the clone, but not the original
	_ = clone.Set(0, 0, 3.0)

	origVal, err := m.At(0, 0)     // retrieve original matrix element
	require.NoError(t, err)        // assert At() succeeded on original
	require.Equal(t, 1.0, origVal) // expect original remains unchanged

	cloneVal, err := clone.At(0, 0) // retrieve clone's element
	require.NoError(t, err)         // assert At() succeeded on clone
	require.Equal(t, 3.0, cloneVal) // expect clone reflects new value
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}}) // literal 2×2 fixture

	expected := "[1, 2]\n[3, 4]\n"         // define expected string output
	require.Equal(t, expected, m.String()) // assert String() output matches expected format
}

// TestFromRowsRagged ensures FromRows rejects literals with uneven row widths.
func TestFromRowsRagged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})   // second row is short
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)  // expect ErrDimensionMismatch

	m, err := matrix.FromRows(nil) // empty literal is the 0×0 matrix
	require.NoError(t, err)        // construction succeeds
	require.Equal(t, 0, m.Rows())  // no rows
	require.Equal(t, 0, m.Cols())  // no columns
}

// TestNewIdentity verifies diagonal ones and off-diagonal zeros.
func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3) // build I_3
	require.NoError(t, err)         // construction succeeds

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := I.At(i, j) // read each element
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1.0, v) // diagonal is one
			} else {
				require.Equal(t, 0.0, v) // everything else is zero
			}
		}
	}
}

// TestEqualSemantics checks exact equality: dimensions plus per-element ==.
func TestEqualSemantics(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}}) // fixture a
	b := mustFromRows(t, [][]float64{{1, 2}, {3, 4}}) // identical values
	c := mustFromRows(t, [][]float64{{1, 2}, {3, 5}}) // one element differs
	d := mustFromRows(t, [][]float64{{1, 2, 3, 4}})   // same data, different shape

	require.True(t, matrix.Equal(a, b))    // identical matrices are equal
	require.False(t, matrix.Equal(a, c))   // any element difference breaks equality
	require.False(t, matrix.Equal(a, d))   // shape is part of equality
	require.True(t, matrix.Equal(nil, nil)) // two absent matrices are equal
	require.False(t, matrix.Equal(a, nil))  // present vs absent is not
}
