// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape checks shared by this package
//    and the multiply kernels.
//  - Return plain sentinel errors (with shape context) so call sites can wrap
//    them uniformly with an operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on failure.

package matrix

import "fmt"

// ValidateNotNil ensures every operand is non-nil.
// Returns ErrNilMatrix on the first nil. Complexity: O(len(ms)).
func ValidateNotNil[T Number](ms ...*Dense[T]) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have identical shapes.
// Sequence: NotNil → Shape.
func ValidateSameShape[T Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrShapeMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
// Sequence: NotNil → inner dimension.
func ValidateMulCompatible[T Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return fmt.Errorf("%dx%d times %dx%d: %w", a.r, a.c, b.r, b.c, ErrShapeMismatch)
	}

	return nil
}
