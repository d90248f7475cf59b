// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"log/slog"
)

// Mismatch describes the first disagreement between two matrices.
// When Shape is true the operands differ in dimensions and Row/Col/Left/Right
// are unset; otherwise (Row, Col) is the first differing coordinate in
// row-major order and Left/Right are the two values found there.
type Mismatch[T Number] struct {
	Shape                bool
	LeftRows, LeftCols   int
	RightRows, RightCols int
	Row, Col             int
	Left, Right          T
}

var _ slog.LogValuer = Mismatch[int]{}

// String renders a one-line diagnostic.
func (mm Mismatch[T]) String() string {
	if mm.Shape {
		return fmt.Sprintf("shape %dx%d vs %dx%d", mm.LeftRows, mm.LeftCols, mm.RightRows, mm.RightCols)
	}

	return fmt.Sprintf("mismatch at (%d,%d): %v vs %v", mm.Row, mm.Col, mm.Left, mm.Right)
}

// LogValue groups the mismatch fields for structured loggers.
func (mm Mismatch[T]) LogValue() slog.Value {
	if mm.Shape {
		return slog.GroupValue(
			slog.String("left", fmt.Sprintf("%dx%d", mm.LeftRows, mm.LeftCols)),
			slog.String("right", fmt.Sprintf("%dx%d", mm.RightRows, mm.RightCols)),
		)
	}

	return slog.GroupValue(
		slog.Int("row", mm.Row),
		slog.Int("col", mm.Col),
		slog.Any("left", mm.Left),
		slog.Any("right", mm.Right),
	)
}

// FirstMismatch scans a and b in row-major order and reports the first
// difference. It returns (zero, false) when both matrices are equal.
// A nil operand equals only another nil operand; a nil vs non-nil pair is
// reported as a shape mismatch against 0×0.
// Complexity: O(r*c) worst case, stops at the first difference.
func FirstMismatch[T Number](a, b *Dense[T]) (Mismatch[T], bool) {
	ar, ac := shapeOf(a)
	br, bc := shapeOf(b)
	if (a == nil) != (b == nil) || ar != br || ac != bc {
		return Mismatch[T]{Shape: true, LeftRows: ar, LeftCols: ac, RightRows: br, RightCols: bc}, true
	}
	if a == nil {
		return Mismatch[T]{}, false
	}
	for idx, av := range a.data {
		if bv := b.data[idx]; av != bv {
			return Mismatch[T]{
				LeftRows: ar, LeftCols: ac, RightRows: br, RightCols: bc,
				Row: idx / ac, Col: idx % ac, Left: av, Right: bv,
			}, true
		}
	}

	return Mismatch[T]{}, false
}

// Equal reports whether a and b have the same shape and identical elements.
func Equal[T Number](a, b *Dense[T]) bool {
	_, differ := FirstMismatch(a, b)
	return !differ
}

// Equal is the method form of the package-level Equal.
func (m *Dense[T]) Equal(other *Dense[T]) bool { return Equal(m, other) }

func shapeOf[T Number](m *Dense[T]) (int, int) {
	if m == nil {
		return 0, 0
	}
	return m.r, m.c
}
