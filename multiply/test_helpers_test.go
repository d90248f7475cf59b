// SPDX-License-Identifier: MIT

package multiply_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matmul/matrix"
)

// randInt64 returns an r×c matrix with values in [-limit, limit) from seed.
// Negative entries make sign errors in the combine step visible.
func randInt64(t testing.TB, r, c int, seed int64, limit int) *matrix.Dense[int64] {
	t.Helper()
	m, err := matrix.NewDense[int64](r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		row := m.RawRow(i)
		for j := range row {
			row[j] = int64(rng.Intn(2*limit) - limit)
		}
	}
	return m
}

// filled returns an r×c matrix with every element equal to v.
func filled(t testing.TB, r, c int, v int64) *matrix.Dense[int64] {
	t.Helper()
	m, err := matrix.NewDense[int64](r, c)
	require.NoError(t, err)
	m.Fill(v)
	return m
}

// requireSame fails with the first differing coordinate.
func requireSame[T matrix.Number](t testing.TB, want, got *matrix.Dense[T]) {
	t.Helper()
	mm, differ := matrix.FirstMismatch(want, got)
	require.Falsef(t, differ, "%s", mm)
}

// requireAll checks every element of m equals v and the shape is r×c.
func requireAll(t testing.TB, m *matrix.Dense[int64], r, c int, v int64) {
	t.Helper()
	require.Equal(t, r, m.Rows())
	require.Equal(t, c, m.Cols())
	for i := 0; i < r; i++ {
		for j, x := range m.RawRow(i) {
			require.Equalf(t, v, x, "at (%d,%d)", i, j)
		}
	}
}

// shapes is the (m, k, n) grid shared by the equivalence tests: every
// odd/even combination, the 1×1×1 edge, and sizes straddling the default
// threshold so the recursive path runs.
var shapes = [][3]int{
	{1, 1, 1},
	{2, 2, 2},
	{3, 3, 3},
	{1, 5, 1},
	{4, 6, 4},
	{7, 2, 9},
	{64, 64, 64},
	{65, 65, 65},
	{66, 33, 17},
	{70, 1, 70},
	{97, 64, 3},
	{128, 128, 128},
	{130, 99, 131},
}
