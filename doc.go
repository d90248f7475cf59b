// Package matmul is a small laboratory for dense matrix multiplication:
// one generic container and several algorithms that must agree on every
// integer input.
//
// 🚀 What is inside?
//
//	• matrix/     generic row-major Dense[T] with Split, Pad, Concatenate,
//	              elementwise Add/Sub and FirstMismatch diagnostics
//	• multiply/   Naive and Reordered triple loops, Strassen-style
//	              DivideConquer with odd-size padding, and fork-join Parallel
//	              (ColumnSplit, RowSplit)
//	• timing/     Measure decorator and a Recorder that logs via slog and
//	              writes JSON reports
//	• cmd/matmul  bench, verify and host subcommands
//
// ✨ Guarantees
//
//   - Value semantics: no two matrices share storage; Split copies.
//   - Exact equivalence: every variant equals multiply.Multiply on integers.
//   - Sentinel errors: match with errors.Is (matrix.ErrShapeMismatch, ...).
//
// Quick start:
//
//	a, _ := matrix.NewDense[int64](65, 33)
//	b, _ := matrix.NewDense[int64](33, 17)
//	a.Randomize(nil, 0)
//	b.Randomize(nil, 0)
//	c, err := multiply.DivideConquer(a, b, multiply.WithThreshold(16))
package matmul
