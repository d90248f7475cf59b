// SPDX-License-Identifier: MIT

// Package matrix provides a dense, row-major, generic numeric container and
// the structural operations that recursive multiplication kernels rely on.
//
// 🚀 What is in here?
//
//	Dense[T] stores an R×C grid of T in ONE contiguous slice (offset i*C + j)
//	and exposes:
//	  • element access:   At, Set, Rows, Cols, Shape
//	  • fill helpers:     Fill, Zero, Randomize, NewDiagonal, NewIdentity
//	  • structure:        Split (deep copy), Pad (explicit grow), Concatenate
//	  • elementwise:      Add, Sub
//	  • comparison:       Equal, FirstMismatch (first differing coordinate)
//
// ✨ Guarantees:
//   - Value semantics: Clone and Split always deep-copy; no two Dense share storage.
//   - Fail-fast: shape and bounds violations return sentinel errors, never panic.
//   - Determinism: fixed i→j loop orders; Randomize draws from a caller-seeded RNG.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDense[int](3, 3)
//	a.Fill(1)
//	top, _ := a.Split(0, 1, 0, 3)   // 1×3 copy
//	a.Pad(true, 0)                  // a is now 4×3
//	_ = a.Concatenate(top, 0, true) // a is now 5×3, top row inserted first
//
// Errors are matched with errors.Is against ErrShapeMismatch, ErrOutOfBounds,
// ErrInvalidDimensions, ErrTooLarge and ErrNilMatrix.
package matrix
