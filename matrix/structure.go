// SPDX-License-Identifier: MIT

// Package matrix - structural transforms used by recursive kernels.
//
// Purpose:
//   - Split: copy-based extraction of a rectangle (never a view).
//   - Pad: explicit one-row/one-column grow with a caller-chosen fill value.
//   - Concatenate: in-place insertion of another matrix's rows or columns.
//
// Invariants:
//   - Rows() and Cols() change ONLY through Pad and Concatenate.
//   - Every structural change reallocates storage; slices obtained via RawRow
//     before the change keep pointing at the old buffer.
//   - The argument of Concatenate is never mutated.

package matrix

import "fmt"

// Split returns a deep copy of rows [rowStart,rowEnd) × cols [colStart,colEnd).
// MAIN DESCRIPTION:
//   - Materialize a submatrix with its own storage; mutating either side
//     never affects the other.
//
// Implementation:
//   - Stage 1: validate 0 ≤ rowStart ≤ rowEnd ≤ R and 0 ≤ colStart ≤ colEnd ≤ C.
//   - Stage 2: allocate (rowEnd-rowStart)×(colEnd-colStart) and copy row segments.
//
// Behavior highlights:
//   - Empty ranges are legal and yield 0×w or h×0 matrices.
//
// Errors:
//   - ErrOutOfBounds for any range violation.
//
// Complexity:
//   - Time O(h*w), Space O(h*w) for the returned matrix.
func (m *Dense[T]) Split(rowStart, rowEnd, colStart, colEnd int) (*Dense[T], error) {
	if rowStart < 0 || rowStart > rowEnd || rowEnd > m.r {
		return nil, matrixErrorf(opSplit, fmt.Errorf("rows [%d,%d) of %d: %w", rowStart, rowEnd, m.r, ErrOutOfBounds))
	}
	if colStart < 0 || colStart > colEnd || colEnd > m.c {
		return nil, matrixErrorf(opSplit, fmt.Errorf("cols [%d,%d) of %d: %w", colStart, colEnd, m.c, ErrOutOfBounds))
	}

	h, w := rowEnd-rowStart, colEnd-colStart
	out := &Dense[T]{r: h, c: w, data: make([]T, h*w)}
	if w == 0 {
		return out, nil
	}
	var src int
	for i := 0; i < h; i++ {
		src = (rowStart+i)*m.c + colStart
		copy(out.data[i*w:(i+1)*w], m.data[src:src+w])
	}

	return out, nil
}

// Pad grows m by exactly one row (alongRows) or one column, filled with value.
// MAIN DESCRIPTION:
//   - Used to make an odd dimension even before a quadrant split.
//
// Implementation:
//   - Rows: extend the flat buffer by C cells (row-major tail append).
//   - Cols: re-layout every row into stride C+1 and write value at the end.
//
// Errors:
//   - ErrTooLarge when the grown size overflows int.
//
// Complexity:
//   - Time O(r*c), Space O((r+1)*c) or O(r*(c+1)).
func (m *Dense[T]) Pad(alongRows bool, value T) error {
	if alongRows {
		n, err := checkedSize(m.r+1, m.c)
		if err != nil {
			return matrixErrorf(opPad, err)
		}
		grown := make([]T, n)
		copy(grown, m.data)
		tail := grown[m.r*m.c:]
		for j := range tail {
			tail[j] = value
		}
		m.data = grown
		m.r++

		return nil
	}

	n, err := checkedSize(m.r, m.c+1)
	if err != nil {
		return matrixErrorf(opPad, err)
	}
	nc := m.c + 1
	grown := make([]T, n)
	for i := 0; i < m.r; i++ {
		copy(grown[i*nc:i*nc+m.c], m.data[i*m.c:(i+1)*m.c])
		grown[i*nc+m.c] = value
	}
	m.data = grown
	m.c = nc

	return nil
}

// Concatenate inserts other's rows (alongRows) or columns into m at position.
// MAIN DESCRIPTION:
//   - Rows: the result is m[0:position) ++ other ++ m[position:R), with
//     other.Cols() == m.Cols().
//   - Cols: every row becomes m[i][0:position) ++ other[i] ++ m[i][position:C),
//     with other.Rows() == m.Rows().
//
// Implementation:
//   - Stage 1: validate other != nil, the shared side, and 0 ≤ position ≤ side.
//   - Stage 2: allocate the combined buffer and copy three spans per row/block.
//   - Stage 3: replace m's storage and dimensions in place.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrOutOfBounds, ErrTooLarge.
//
// Complexity:
//   - Time O(size of result), Space O(size of result).
func (m *Dense[T]) Concatenate(other *Dense[T], position int, alongRows bool) error {
	if other == nil {
		return matrixErrorf(opConcatenate, ErrNilMatrix)
	}
	if alongRows {
		return m.concatRows(other, position)
	}

	return m.concatCols(other, position)
}

// concatRows implements the row-wise branch of Concatenate.
func (m *Dense[T]) concatRows(other *Dense[T], position int) error {
	if other.c != m.c {
		return matrixErrorf(opConcatenate, fmt.Errorf("cols %d vs %d: %w", other.c, m.c, ErrShapeMismatch))
	}
	if position < 0 || position > m.r {
		return matrixErrorf(opConcatenate, fmt.Errorf("row position %d of %d: %w", position, m.r, ErrOutOfBounds))
	}
	n, err := checkedSize(m.r+other.r, m.c)
	if err != nil {
		return matrixErrorf(opConcatenate, err)
	}

	// Row-major layout makes every row block a single contiguous span.
	head := position * m.c
	grown := make([]T, n)
	copy(grown, m.data[:head])
	copy(grown[head:], other.data)
	copy(grown[head+len(other.data):], m.data[head:])
	m.data = grown
	m.r += other.r

	return nil
}

// concatCols implements the column-wise branch of Concatenate.
func (m *Dense[T]) concatCols(other *Dense[T], position int) error {
	if other.r != m.r {
		return matrixErrorf(opConcatenate, fmt.Errorf("rows %d vs %d: %w", other.r, m.r, ErrShapeMismatch))
	}
	if position < 0 || position > m.c {
		return matrixErrorf(opConcatenate, fmt.Errorf("col position %d of %d: %w", position, m.c, ErrOutOfBounds))
	}
	n, err := checkedSize(m.r, m.c+other.c)
	if err != nil {
		return matrixErrorf(opConcatenate, err)
	}

	nc := m.c + other.c
	grown := make([]T, n)
	var src, dst int
	for i := 0; i < m.r; i++ {
		src, dst = i*m.c, i*nc
		copy(grown[dst:dst+position], m.data[src:src+position])
		copy(grown[dst+position:dst+position+other.c], other.data[i*other.c:(i+1)*other.c])
		copy(grown[dst+position+other.c:dst+nc], m.data[src+position:src+m.c])
	}
	m.data = grown
	m.c = nc

	return nil
}
