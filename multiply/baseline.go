// SPDX-License-Identifier: MIT

// Package multiply - baseline triple-loop kernels.
//
// Both kernels validate before allocating and write into a fresh m×n result.
// The *Into helpers accumulate (C += A·B) and are shared with DivideConquer
// (base case) and Parallel (per-worker bodies).

package multiply

import "github.com/katalvlaran/matmul/matrix"

// Multiply is the canonical product C = A × B. It is an alias of Naive and
// serves as the reference every other algorithm is checked against.
func Multiply[T matrix.Number](a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	return Naive(a, b)
}

// Naive computes C = A × B with the textbook i→j→k loop order.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: allocate C (m×n) and compute every dot product A[i,:]·B[:,j].
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrShapeMismatch.
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n). B is read column-wise (strided).
func Naive[T matrix.Number](a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opNaive, err)
	}
	c, err := matrix.NewDense[T](a.Rows(), b.Cols())
	if err != nil {
		return nil, multiplyErrorf(opNaive, err)
	}
	naiveCols(a, b, c, 0, b.Cols())

	return c, nil
}

// Reordered computes C = A × B with the i→k→j loop order: for each A[i,k]
// the whole row B[k,:] is streamed into C[i,:], so both B and C are read
// contiguously.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrShapeMismatch.
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n).
func Reordered[T matrix.Number](a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opReordered, err)
	}
	c, err := matrix.NewDense[T](a.Rows(), b.Cols())
	if err != nil {
		return nil, multiplyErrorf(opReordered, err)
	}
	reorderedInto(a, b, c)

	return c, nil
}

// naiveCols overwrites columns [colStart, colEnd) of c with the matching
// columns of A × B, walking j→i→k. Columns outside the range are not touched,
// which is what lets ColumnSplit workers share one output.
// Shapes must already be validated.
func naiveCols[T matrix.Number](a, b, c *matrix.Dense[T], colStart, colEnd int) {
	m, k := a.Rows(), a.Cols()
	var (
		i, j, t int
		acc     T
		aRow    []T
	)
	for j = colStart; j < colEnd; j++ {
		for i = 0; i < m; i++ {
			aRow = a.RawRow(i)
			acc = 0
			for t = 0; t < k; t++ {
				acc += aRow[t] * b.RawRow(t)[j]
			}
			c.RawRow(i)[j] = acc
		}
	}
}

// reorderedInto accumulates A × B into c (c += A·B) in i→k→j order.
// Zero entries of A are skipped. Shapes must already be validated.
func reorderedInto[T matrix.Number](a, b, c *matrix.Dense[T]) {
	m, k := a.Rows(), a.Cols()
	var (
		i, t       int
		av         T
		aRow, cRow []T
	)
	for i = 0; i < m; i++ {
		aRow = a.RawRow(i)
		cRow = c.RawRow(i)
		for t = 0; t < k; t++ {
			av = aRow[t]
			if av == 0 {
				continue // contributes nothing
			}
			for j, bv := range b.RawRow(t) {
				cRow[j] += av * bv
			}
		}
	}
}
