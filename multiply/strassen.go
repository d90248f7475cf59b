// SPDX-License-Identifier: MIT

// Package multiply - Strassen divide-and-conquer product.
//
// Recursion outline for A (m×k) × B (k×n):
//
//	m < threshold        → Reordered (base case)
//	any of m, k, n odd   → pad with one zero row/col, recurse, crop m×n
//	otherwise            → 2×2 quadrant split, seven half-size products:
//
//	  M1 = (A11+A22)(B11+B22)    C11 = M1 + M4 - M5 + M7
//	  M2 = (A21+A22) B11         C12 = M3 + M5
//	  M3 = A11 (B12-B22)         C21 = M2 + M4
//	  M4 = A22 (B21-B11)         C22 = M1 - M2 + M3 + M6
//	  M5 = (A11+A12) B22
//	  M6 = (A21-A11)(B11+B12)
//	  M7 = (A12-A22)(B21+B22)
//
// Every recursion level takes the rows of A down to ⌈m/2⌉, so for any
// threshold >= 2 the recursion terminates.

package multiply

import "github.com/katalvlaran/matmul/matrix"

// Stats is the recursion profile of one DivideConquer call.
type Stats struct {
	Calls     int // recursive invocations, including the top-level one
	BaseCases int // invocations answered by Reordered
	Pads      int // invocations that padded an odd side
	MaxDepth  int // deepest recursion level reached (top level = 0)
}

// DivideConquer computes C = A × B with Strassen's recursion.
// MAIN DESCRIPTION:
//   - Same contract as Naive; results are identical on integer element types.
//
// Implementation:
//   - Stage 1: validate operands once, before any recursion.
//   - Stage 2: recurse (see package outline); padding copies operands, the
//     caller's matrices are never mutated.
//   - Stage 3: return the freshly assembled m×n product.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrShapeMismatch (fail fast).
//   - matrix.ErrTooLarge if a padded operand cannot be sized.
//
// Complexity:
//   - Time O(n^2.807) for square n above the threshold; Space O(n^2) live
//     temporaries per level.
func DivideConquer[T matrix.Number](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opDivideConquer, err)
	}
	o := gatherOptions(opts)
	if o.stats != nil {
		*o.stats = Stats{}
	}

	ev := &evaluator[T]{threshold: o.threshold, stats: o.stats}
	c := ev.mul(a, b, 0)
	if ev.err != nil {
		return nil, multiplyErrorf(opDivideConquer, ev.err)
	}

	return c, nil
}

// evaluator carries the recursion configuration and a sticky error: once an
// operation fails, every later call is a no-op returning nil, so the
// product formulas can be written as plain expressions.
type evaluator[T matrix.Number] struct {
	threshold int
	stats     *Stats
	err       error
}

func (ev *evaluator[T]) add(x, y *matrix.Dense[T]) *matrix.Dense[T] {
	if ev.err != nil {
		return nil
	}
	var out *matrix.Dense[T]
	out, ev.err = matrix.Add(x, y)
	return out
}

func (ev *evaluator[T]) sub(x, y *matrix.Dense[T]) *matrix.Dense[T] {
	if ev.err != nil {
		return nil
	}
	var out *matrix.Dense[T]
	out, ev.err = matrix.Sub(x, y)
	return out
}

// mul is one recursion step; depth is used only for Stats.
func (ev *evaluator[T]) mul(a, b *matrix.Dense[T], depth int) *matrix.Dense[T] {
	if ev.err != nil {
		return nil
	}
	ev.record(depth)

	m, k, n := a.Rows(), a.Cols(), b.Cols()
	if m < ev.threshold {
		if ev.stats != nil {
			ev.stats.BaseCases++
		}
		var c *matrix.Dense[T]
		c, ev.err = Reordered(a, b)
		return c
	}
	if m%2 != 0 || k%2 != 0 || n%2 != 0 {
		return ev.padded(a, b, depth)
	}

	a11, a12, a21, a22 := ev.quadrants(a)
	b11, b12, b21, b22 := ev.quadrants(b)
	if ev.err != nil {
		return nil
	}

	next := depth + 1
	m1 := ev.mul(ev.add(a11, a22), ev.add(b11, b22), next)
	m2 := ev.mul(ev.add(a21, a22), b11, next)
	m3 := ev.mul(a11, ev.sub(b12, b22), next)
	m4 := ev.mul(a22, ev.sub(b21, b11), next)
	m5 := ev.mul(ev.add(a11, a12), b22, next)
	m6 := ev.mul(ev.sub(a21, a11), ev.add(b11, b12), next)
	m7 := ev.mul(ev.sub(a12, a22), ev.add(b21, b22), next)

	c11 := ev.add(ev.sub(ev.add(m1, m4), m5), m7)
	c12 := ev.add(m3, m5)
	c21 := ev.add(m2, m4)
	c22 := ev.add(ev.add(ev.sub(m1, m2), m3), m6)
	if ev.err != nil {
		return nil
	}

	return ev.assemble(c11, c12, c21, c22)
}

// padded makes every odd side of the problem even with one zero row/col,
// recurses, and crops the top-left m×n block. Zero padding adds only zero
// terms to the affected dot products.
func (ev *evaluator[T]) padded(a, b *matrix.Dense[T], depth int) *matrix.Dense[T] {
	if ev.stats != nil {
		ev.stats.Pads++
	}
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	pa, pb := a.Clone(), b.Clone()
	if m%2 != 0 {
		ev.pad(pa, true)
	}
	if k%2 != 0 {
		ev.pad(pa, false)
		ev.pad(pb, true)
	}
	if n%2 != 0 {
		ev.pad(pb, false)
	}

	pc := ev.mul(pa, pb, depth+1)
	if ev.err != nil {
		return nil
	}
	var c *matrix.Dense[T]
	c, ev.err = pc.Split(0, m, 0, n)
	return c
}

func (ev *evaluator[T]) pad(x *matrix.Dense[T], alongRows bool) {
	if ev.err != nil {
		return
	}
	ev.err = x.Pad(alongRows, 0)
}

// quadrants splits an even-sided x into its four equal quadrants.
func (ev *evaluator[T]) quadrants(x *matrix.Dense[T]) (q11, q12, q21, q22 *matrix.Dense[T]) {
	if ev.err != nil {
		return nil, nil, nil, nil
	}
	r, c := x.Shape()
	hr, hc := r/2, c/2
	split := func(r0, r1, c0, c1 int) *matrix.Dense[T] {
		if ev.err != nil {
			return nil
		}
		var q *matrix.Dense[T]
		q, ev.err = x.Split(r0, r1, c0, c1)
		return q
	}

	return split(0, hr, 0, hc), split(0, hr, hc, c), split(hr, r, 0, hc), split(hr, r, hc, c)
}

// assemble stitches [C11 C12; C21 C22] into one matrix, reusing c11's storage.
func (ev *evaluator[T]) assemble(c11, c12, c21, c22 *matrix.Dense[T]) *matrix.Dense[T] {
	if err := c11.Concatenate(c12, c11.Cols(), false); err != nil {
		ev.err = err
		return nil
	}
	if err := c21.Concatenate(c22, c21.Cols(), false); err != nil {
		ev.err = err
		return nil
	}
	if err := c11.Concatenate(c21, c11.Rows(), true); err != nil {
		ev.err = err
		return nil
	}

	return c11
}

func (ev *evaluator[T]) record(depth int) {
	if ev.stats == nil {
		return
	}
	ev.stats.Calls++
	if depth > ev.stats.MaxDepth {
		ev.stats.MaxDepth = depth
	}
}
