// SPDX-License-Identifier: MIT
// Package matrix_test covers Split, Pad and Concatenate.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matmul/matrix"
)

// TestSplitCopiesRegion checks the addressed rectangle is extracted exactly.
func TestSplitCopiesRegion(t *testing.T) {
	t.Parallel()

	m := Sequential(t, 3, 4) // rows 1..4, 5..8, 9..12
	s, err := m.Split(1, 3, 1, 3)
	require.NoError(t, err)
	CompareExact(t, [][]int{{6, 7}, {10, 11}}, s)

	empty, err := m.Split(2, 2, 0, 4)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 4, empty.Cols())
}

// TestSplitIsNotAView ensures mutations never cross between source and result.
func TestSplitIsNotAView(t *testing.T) {
	t.Parallel()

	m := Sequential(t, 2, 2)
	s, err := m.Split(0, 2, 0, 2)
	require.NoError(t, err)

	require.NoError(t, s.Set(0, 0, 100))
	v, _ := m.At(0, 0)
	require.Equal(t, 1, v)

	require.NoError(t, m.Set(1, 1, -1))
	v, _ = s.At(1, 1)
	require.Equal(t, 4, v)
}

// TestSplitOutOfBounds covers every bound of the range contract.
func TestSplitOutOfBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 3)
	tests := []struct {
		name           string
		r0, r1, c0, c1 int
	}{
		{"negative row start", -1, 2, 0, 2},
		{"row end past rows", 0, 4, 0, 2},
		{"row start after end", 2, 1, 0, 2},
		{"negative col start", 0, 2, -1, 2},
		{"col end past cols", 0, 2, 0, 4},
		{"col start after end", 0, 2, 3, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Split(tc.r0, tc.r1, tc.c0, tc.c1)
			require.ErrorIs(t, err, matrix.ErrOutOfBounds)
		})
	}
}

// TestPadGrowsByOne checks the new row/column and its fill value.
func TestPadGrowsByOne(t *testing.T) {
	t.Parallel()

	m := Sequential(t, 2, 2)
	require.NoError(t, m.Pad(true, 9))
	CompareExact(t, [][]int{{1, 2}, {3, 4}, {9, 9}}, m)

	require.NoError(t, m.Pad(false, 7))
	CompareExact(t, [][]int{{1, 2, 7}, {3, 4, 7}, {9, 9, 7}}, m)

	e := MustDense(t, 0, 0)
	require.NoError(t, e.Pad(false, 1))
	require.Equal(t, 0, e.Rows())
	require.Equal(t, 1, e.Cols())
	require.NoError(t, e.Pad(true, 5))
	CompareExact(t, [][]int{{5}}, e)
}

// TestPadRoundTrip pads by one and splits back to the original rectangle.
func TestPadRoundTrip(t *testing.T) {
	t.Parallel()

	for _, alongRows := range []bool{true, false} {
		for _, shape := range [][2]int{{1, 1}, {3, 5}, {4, 2}, {7, 7}} {
			t.Run(fmt.Sprintf("rows=%v/%dx%d", alongRows, shape[0], shape[1]), func(t *testing.T) {
				orig := RandDense(t, shape[0], shape[1], 11)
				p := orig.Clone()
				require.NoError(t, p.Pad(alongRows, -3))

				back, err := p.Split(0, shape[0], 0, shape[1])
				require.NoError(t, err)
				RequireEqual(t, orig, back)
			})
		}
	}
}

// TestConcatenateInverseOfSplit reconstructs the original from both halves at
// every split point, row-wise and column-wise.
func TestConcatenateInverseOfSplit(t *testing.T) {
	t.Parallel()

	orig := RandDense(t, 5, 4, 3)

	for cut := 0; cut <= orig.Rows(); cut++ {
		top, err := orig.Split(0, cut, 0, orig.Cols())
		require.NoError(t, err)
		bottom, err := orig.Split(cut, orig.Rows(), 0, orig.Cols())
		require.NoError(t, err)
		require.NoError(t, top.Concatenate(bottom, top.Rows(), true))
		RequireEqual(t, orig, top)
	}

	for cut := 0; cut <= orig.Cols(); cut++ {
		left, err := orig.Split(0, orig.Rows(), 0, cut)
		require.NoError(t, err)
		right, err := orig.Split(0, orig.Rows(), cut, orig.Cols())
		require.NoError(t, err)
		require.NoError(t, left.Concatenate(right, left.Cols(), false))
		RequireEqual(t, orig, left)
	}
}

// TestConcatenateAtPosition inserts in the middle and at the front.
func TestConcatenateAtPosition(t *testing.T) {
	t.Parallel()

	m := FromRows(t, [][]int{{1, 2}, {3, 4}})
	ins := FromRows(t, [][]int{{8, 9}})
	require.NoError(t, m.Concatenate(ins, 1, true))
	CompareExact(t, [][]int{{1, 2}, {8, 9}, {3, 4}}, m)

	col := FromRows(t, [][]int{{0}, {0}, {0}})
	require.NoError(t, m.Concatenate(col, 0, false))
	CompareExact(t, [][]int{{0, 1, 2}, {0, 8, 9}, {0, 3, 4}}, m)

	// The argument is left untouched.
	CompareExact(t, [][]int{{8, 9}}, ins)
}

// TestConcatenateErrors covers shape, position and nil guards.
func TestConcatenateErrors(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	require.ErrorIs(t, m.Concatenate(MustDense(t, 1, 2), 2, true), matrix.ErrShapeMismatch)
	require.ErrorIs(t, m.Concatenate(MustDense(t, 3, 1), 3, false), matrix.ErrShapeMismatch)
	require.ErrorIs(t, m.Concatenate(MustDense(t, 1, 3), 3, true), matrix.ErrOutOfBounds)
	require.ErrorIs(t, m.Concatenate(MustDense(t, 2, 1), -1, false), matrix.ErrOutOfBounds)
	require.ErrorIs(t, m.Concatenate(nil, 0, true), matrix.ErrNilMatrix)

	// Failed calls leave the receiver unchanged.
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
}
