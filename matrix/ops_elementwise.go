// SPDX-License-Identifier: MIT
// Package matrix provides elementwise addition and subtraction on Dense.
// Both perform strict fail-fast validation and return a freshly allocated
// result; operands are never mutated.

package matrix

// addSub computes out = a + b (sub=false) or out = a - b (sub=true).
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 over both backing slices.
//
// Notes:
//   - The branch is hoisted out of the hot loop; each variant is one tight loop.
func addSub[T Number](a, b *Dense[T], sub bool, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	bd := b.data[:len(a.data)]
	if sub {
		for idx, av := range a.data {
			out.data[idx] = av - bd[idx]
		}
	} else {
		for idx, av := range a.data {
			out.data[idx] = av + bd[idx]
		}
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// AddInPlace accumulates b into a (a += b). Used by reductions that fold
// several partial products into one buffer without extra allocations.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func AddInPlace[T Number](a, b *Dense[T]) error {
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(opAdd, err)
	}
	bd := b.data[:len(a.data)]
	for idx := range a.data {
		a.data[idx] += bd[idx]
	}

	return nil
}
