// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (optionally wrapped with an operation
// tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Context is attached with matrixErrorf("<Op>", ErrX) at the detection site;
// callers still use errors.Is to match.

var (
	// ErrInvalidDimensions is returned when a requested shape has a negative side.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrTooLarge is returned when rows*cols does not fit the address space.
	// It is the recoverable face of resource exhaustion; an actual allocation
	// failure is fatal in Go and is never retried.
	ErrTooLarge = errors.New("matrix: dimensions too large")

	// ErrOutOfBounds indicates a row/column index or split range outside valid bounds.
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrShapeMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes, Concatenate with a disagreeing side, or a multiply
	// where a.Cols() != b.Rows().
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation tags for error wrapping.
const (
	opNew         = "NewDense"
	opFromRows    = "NewFromRows"
	opSplit       = "Split"
	opPad         = "Pad"
	opConcatenate = "Concatenate"
	opCopyFrom    = "CopyFrom"
	opAdd         = "Add"
	opSub         = "Sub"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Callers must only pass a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Dense context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
