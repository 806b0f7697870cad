// SPDX-License-Identifier: MIT
// Package matrix: textual encoding and decoding of Dense matrices.
//
// Format (one matrix):
//   - one row per line, values separated by single spaces,
//   - values rendered as shortest round-trip decimal literals (%g, 64-bit),
//   - no header: the shape is implied by line and token counts.
//
// Format (matrix pair, e.g. an input file for the CLI):
//   - first matrix, then a line holding the single delimiter token "X",
//     then the second matrix.
//
// Degenerate shapes: a matrix with zero rows or zero columns serializes to
// the empty string, and ParseDense("") yields a 0×0 matrix — the text form
// cannot distinguish r×0 from 0×c, which is acceptable because such values
// carry no elements. Round-trip equality is exact for all positive shapes.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// PairDelimiter separates two matrices inside a single text document.
const PairDelimiter = "X"

// valueSeparator joins the values of one row.
const valueSeparator = " "

// MarshalText renders m in the package text format.
//
// Implementation:
//   - Stage 1: fast-path *Dense reads the flat slice directly; any other
//     implementation goes through At (errors are not expected after the
//     receiver's own bounds).
//   - Stage 2: format each value with strconv.FormatFloat('g', -1, 64),
//     the shortest representation that parses back to the identical bits.
//
// Determinism: fixed i→j order; output is stable for equal inputs.
// Complexity: O(r*c) time and output size.
func MarshalText(m Matrix) string {
	rows, cols := m.Rows(), m.Cols()
	// Degenerate shapes carry no elements and serialize to nothing.
	if rows == 0 || cols == 0 {
		return ""
	}

	var b strings.Builder
	var i, j int
	var v float64
	d, fast := m.(*Dense)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(valueSeparator) // single space between values
			}
			if fast {
				v = d.data[i*cols+j] // direct flat read
			} else {
				v, _ = m.At(i, j) // bounds are the receiver's own; error not expected
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64)) // lossless literal
		}
		b.WriteString("\n") // one row per line
	}

	return b.String()
}

// ParseDense decodes a single matrix from its text form.
//
// Implementation:
//   - Stage 1: split into lines, dropping a single trailing newline; empty
//     input decodes to a well-formed 0×0 matrix.
//   - Stage 2: the first line fixes the column count; every line is
//     tokenized on whitespace and parsed with strconv.ParseFloat.
//
// Errors:
//   - ErrParse when a line's token count disagrees with the first line's
//     (ragged input) or a token is not a valid float literal; the wrapped
//     message names the offending line and token so callers can diagnose.
//
// Determinism: fixed line→token order.
// Complexity: O(len(s)).
func ParseDense(s string) (*Dense, error) {
	lines := splitLines(s)
	if len(lines) == 0 {
		return NewDense(0, 0) // empty document → empty matrix
	}

	// The first line fixes the expected width of every row.
	cols := len(strings.Fields(lines[0]))
	data := make([]float64, 0, len(lines)*cols)
	for n, line := range lines {
		tokens := strings.Fields(line)
		// Ragged rows are a structural defect, never silently coerced.
		if len(tokens) != cols {
			return nil, matrixErrorf(opParse,
				fmt.Errorf("line %d: %d values, want %d: %w", n+1, len(tokens), cols, ErrParse))
		}
		for t, token := range tokens {
			v, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return nil, matrixErrorf(opParse,
					fmt.Errorf("line %d, token %d: %q is not a number: %w", n+1, t+1, token, ErrParse))
			}
			data = append(data, v)
		}
	}

	// Adopt the parsed values; the length invariant holds by construction.
	return NewDenseFrom(len(lines), cols, data)
}

// ParsePair decodes two matrices separated by the PairDelimiter line.
//
// Stage 1: locate the delimiter (a line whose sole token is "X").
// Stage 2: parse the text before and after it independently via ParseDense.
// Errors: ErrParse when the delimiter is missing; ParseDense errors bubble up.
// Complexity: O(len(s)).
func ParsePair(s string) (*Dense, *Dense, error) {
	lines := splitLines(s)
	// Scan for the delimiter line in document order.
	split := -1
	for n, line := range lines {
		if strings.TrimSpace(line) == PairDelimiter {
			split = n
			break
		}
	}
	if split < 0 {
		return nil, nil, matrixErrorf(opParsePair,
			fmt.Errorf("missing %q delimiter line: %w", PairDelimiter, ErrParse))
	}

	// Decode both halves independently; either may be empty.
	a, err := ParseDense(strings.Join(lines[:split], "\n"))
	if err != nil {
		return nil, nil, matrixErrorf(opParsePair, err)
	}
	b, err := ParseDense(strings.Join(lines[split+1:], "\n"))
	if err != nil {
		return nil, nil, matrixErrorf(opParsePair, err)
	}

	return a, b, nil
}

// splitLines splits s into content lines, treating a fully blank document as
// empty and tolerating one trailing newline (the form MarshalText emits).
func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	s = strings.TrimRight(s, "\n") // drop trailing newline(s) before splitting

	return strings.Split(s, "\n")
}
