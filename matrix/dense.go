// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, caller-seeded randomness).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Fill/Zero: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Defaults for Randomize.
const (
	// DefaultRandomLimit is the exclusive upper bound used when Randomize gets limit <= 0.
	DefaultRandomLimit = 100

	// DefaultSeed is the fixed seed used when Randomize gets a nil RNG.
	DefaultSeed int64 = 1
)

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense exclusively owns data. Every operation that hands out a matrix
// (Clone, Split, Add, ...) allocates fresh storage.
type Dense[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// checkedSize returns rows*cols or an error when the shape is negative or
// the product overflows int.
func checkedSize(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, ErrInvalidDimensions
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return 0, ErrTooLarge
	}

	return rows * cols, nil
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and that rows*cols fits an int.
//   - Stage 2: allocate one zero-filled buffer.
//
// Behavior highlights:
//   - 0×N and N×0 matrices are legal; they appear as empty quadrants and
//     empty partitions in the multiply kernels.
//
// Errors:
//   - ErrInvalidDimensions (negative side), ErrTooLarge (size overflow).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	n, err := checkedSize(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, n)}, nil
}

// NewFromRows builds a Dense from a slice of equally long rows (deep copy).
// An empty input yields a 0×0 matrix. Ragged input returns ErrShapeMismatch.
// Complexity: O(r*c).
func NewFromRows[T Number](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense[T](r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrShapeMismatch))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewDiagonal returns an n×n matrix with values on the main diagonal and
// zeros elsewhere, where n = len(values).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewDiagonal[T Number](values []T) *Dense[T] {
	n := len(values)
	m := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	for i, v := range values {
		m.data[i*n+i] = v
	}

	return m
}

// NewIdentity returns I_n: ones on the diagonal, zeros elsewhere.
// Negative n returns ErrInvalidDimensions.
func NewIdentity[T Number](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// The sentinel is wrapped with the caller's method tag and coordinates.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col) or ErrOutOfBounds.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col) or returns ErrOutOfBounds.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// RawRow returns the live backing slice of row i (length Cols()).
// It exists for tight kernels in sibling packages: writes are visible in m,
// and the slice must not be retained past a structural change (Pad,
// Concatenate), which reallocates storage. It panics like a slice index when
// i is out of range.
func (m *Dense[T]) RawRow(i int) []T {
	if i < 0 || i >= m.r {
		panic(denseErrorf("RawRow", i, 0, ErrOutOfBounds))
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Clone returns a deep copy sharing no storage with m.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Fill sets every element to v.
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Zero sets every element to 0. Equivalent to Fill(0).
func (m *Dense[T]) Zero() {
	clear(m.data)
}

// Randomize fills m with pseudo-random values in [0, limit).
// Implementation:
//   - Stage 1: normalize limit<=0 to DefaultRandomLimit and rng==nil to a
//     generator seeded with DefaultSeed.
//   - Stage 2: draw one value per element in fixed row-major order.
//
// Determinism:
//   - Same seed and shape ⇒ same contents.
//
// Notes:
//   - *rand.Rand is not goroutine-safe; do not share one across goroutines.
//   - Narrow element types wrap when limit exceeds their range.
func (m *Dense[T]) Randomize(rng *rand.Rand, limit int) {
	if limit <= 0 {
		limit = DefaultRandomLimit
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(DefaultSeed))
	}
	for i := range m.data {
		m.data[i] = T(rng.Intn(limit))
	}
}

// CopyFrom overwrites m with the contents of src, which must have the same shape.
// Complexity: O(r*c).
func (m *Dense[T]) CopyFrom(src *Dense[T]) error {
	if src == nil {
		return matrixErrorf(opCopyFrom, ErrNilMatrix)
	}
	if src.r != m.r || src.c != m.c {
		return matrixErrorf(opCopyFrom, fmt.Errorf("%dx%d into %dx%d: %w", src.r, src.c, m.r, m.c, ErrShapeMismatch))
	}
	copy(m.data, src.data)

	return nil
}

// String implements fmt.Stringer: one bracketed, comma-separated line per row.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		base := i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, m.data[base+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
