// SPDX-License-Identifier: MIT

// Package multiply implements dense matrix multiplication of increasing
// sophistication on top of matrix.Dense.
//
// 🚀 Algorithms:
//
//	Naive        : textbook i→j→k triple loop; the ground truth for every other variant.
//	Reordered    : i→k→j loop order so B and C are streamed row by row (cache friendly).
//	DivideConquer: Strassen recursion: 7 half-size products per level instead of 8,
//	                zero padding for odd sides, Reordered below a row threshold.
//	Parallel     : fork-join over disjoint output columns (ColumnSplit) or over
//	                the inner dimension with a final reduction (RowSplit).
//
// ✨ Contract:
//   - For A (m×k) and B (k×n) every algorithm returns C (m×n) with
//     C[i][j] = Σ_t A[i][t]·B[t][j]. On integer element types all variants agree
//     bit for bit.
//   - A.Cols() != B.Rows() fails with matrix.ErrShapeMismatch before any work.
//   - BlockSplit is reserved and fails with ErrNotImplemented.
//
// Performance:
//
//   - Naive/Reordered: O(m·k·n)
//   - DivideConquer:   O(n^log2(7)) ≈ O(n^2.807) multiplications, plus 18 additions
//     per level; only worth it above the threshold (DefaultThreshold = 64 rows).
//   - Parallel:        O(m·k·n / workers) per goroutine, one join.
//
// ⚙️ Usage:
//
//	c, err := multiply.DivideConquer(a, b, multiply.WithThreshold(128))
//	p, err := multiply.Parallel(a, b, multiply.RowSplit{})
package multiply
