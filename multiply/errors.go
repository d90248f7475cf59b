// SPDX-License-Identifier: MIT
// Package multiply: sentinel errors and wrapping helpers.
// Shape problems reuse matrix.ErrShapeMismatch / matrix.ErrNilMatrix so that a
// single errors.Is check works across both packages.

package multiply

import (
	"errors"
	"fmt"
)

// ErrNotImplemented marks a parallel decomposition that is declared but not
// provided (BlockSplit, or a Mode value this package does not know).
var ErrNotImplemented = errors.New("multiply: mode not implemented")

// Operation tags for error wrapping.
const (
	opNaive         = "Naive"
	opReordered     = "Reordered"
	opDivideConquer = "DivideConquer"
	opParallel      = "Parallel"
)

// multiplyErrorf wraps err with an operation tag, preserving it for errors.Is.
func multiplyErrorf(tag string, err error) error {
	return fmt.Errorf("multiply.%s: %w", tag, err)
}
