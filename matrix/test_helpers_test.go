// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for Dense tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matmul/matrix"
)

// MustDense allocates an r×c *Dense[int] or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense[int] {
	t.Helper()
	m, err := matrix.NewDense[int](r, c)
	require.NoError(t, err)
	return m
}

// FromRows builds a *Dense[int] from literal rows or fails the test.
func FromRows(t testing.TB, rows [][]int) *matrix.Dense[int] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// Sequential returns an r×c matrix whose (i,j) element is i*c + j + 1,
// so every cell is distinct and its origin is visible in failures.
func Sequential(t testing.TB, r, c int) *matrix.Dense[int] {
	t.Helper()
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, i*c+j+1))
		}
	}
	return m
}

// RandDense returns an r×c matrix filled from a fixed seed.
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense[int] {
	t.Helper()
	m := MustDense(t, r, c)
	m.Randomize(rand.New(rand.NewSource(seed)), 50)
	return m
}

// CompareExact asserts m equals the literal want, cell by cell.
func CompareExact(t testing.TB, want [][]int, m *matrix.Dense[int]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.Equal(t, len(row), m.Cols(), "cols of row %d", i)
		for j, v := range row {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Equalf(t, v, got, "at (%d,%d)", i, j)
		}
	}
}

// RequireEqual fails with the first mismatching coordinate when a != b.
func RequireEqual(t testing.TB, want, got *matrix.Dense[int]) {
	t.Helper()
	mm, differ := matrix.FirstMismatch(want, got)
	require.Falsef(t, differ, "%s", mm)
}
