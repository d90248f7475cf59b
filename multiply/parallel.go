// SPDX-License-Identifier: MIT

// Package multiply - fork-join parallel products.
//
// Scheduling model:
//   - One goroutine per partition (Workers, default 2); no pool, no stealing.
//   - The caller blocks on a single errgroup.Wait; results are only read after it.
//   - No cancellation: once forked, every worker runs to completion.
//
// Shared-state policy:
//   - ColumnSplit: all workers write one output, each into its own column
//     range. partition guarantees the ranges are disjoint and cover [0,n).
//   - RowSplit: every worker owns a private partial output; partials are
//     summed after the join.

package multiply

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matmul/matrix"
)

// DefaultWorkers is the fan-out used when a Mode leaves Workers at zero.
const DefaultWorkers = 2

// Mode selects the parallel decomposition. It is a closed set: ColumnSplit,
// RowSplit and BlockSplit are the only implementations.
type Mode interface {
	fmt.Stringer
	isMode()
}

// ColumnSplit partitions the output columns among Workers goroutines.
// Every worker reads all of A and B.
type ColumnSplit struct {
	Workers int // <= 0 means DefaultWorkers
}

// RowSplit partitions the inner dimension: worker w multiplies the column
// block A[:, kw] by the row block B[kw, :] into a private full-size partial,
// and the partials are summed after the join.
type RowSplit struct {
	Workers int // <= 0 means DefaultWorkers
}

// BlockSplit is the reserved quadrant decomposition. Parallel rejects it
// with ErrNotImplemented.
type BlockSplit struct{}

func (ColumnSplit) isMode() {}
func (RowSplit) isMode()    {}
func (BlockSplit) isMode()  {}

func (m ColumnSplit) String() string { return fmt.Sprintf("ColumnSplit(%d)", workersOf(m.Workers)) }
func (m RowSplit) String() string    { return fmt.Sprintf("RowSplit(%d)", workersOf(m.Workers)) }
func (BlockSplit) String() string    { return "BlockSplit" }

func workersOf(n int) int {
	if n <= 0 {
		return DefaultWorkers
	}
	return n
}

// Parallel computes C = A × B with the decomposition selected by mode.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b), before any goroutine starts.
//   - Stage 2: dispatch on the concrete Mode.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrShapeMismatch.
//   - ErrNotImplemented for BlockSplit, a nil mode, or an unknown Mode.
//
// Complexity:
//   - Time O(m*k*n / workers) wall clock; RowSplit adds O(workers * m*n)
//     memory and a final O(workers * m*n) reduction.
func Parallel[T matrix.Number](a, b *matrix.Dense[T], mode Mode) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opParallel, err)
	}

	var (
		c   *matrix.Dense[T]
		err error
	)
	switch md := mode.(type) {
	case ColumnSplit:
		c, err = columnSplit(a, b, workersOf(md.Workers))
	case RowSplit:
		c, err = rowSplit(a, b, workersOf(md.Workers))
	case BlockSplit:
		err = fmt.Errorf("%s: %w", md, ErrNotImplemented)
	default:
		err = fmt.Errorf("%T: %w", mode, ErrNotImplemented)
	}
	if err != nil {
		return nil, multiplyErrorf(opParallel, err)
	}

	return c, nil
}

// columnSplit forks one worker per column range of the shared output.
func columnSplit[T matrix.Number](a, b *matrix.Dense[T], workers int) (*matrix.Dense[T], error) {
	c, err := matrix.NewDense[T](a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}

	var g errgroup.Group
	for _, s := range partition(b.Cols(), workers) {
		s := s
		g.Go(func() error {
			naiveCols(a, b, c, s.lo, s.hi)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return c, nil
}

// rowSplit forks one worker per inner-dimension block and reduces the
// private partial products after the join.
func rowSplit[T matrix.Number](a, b *matrix.Dense[T], workers int) (*matrix.Dense[T], error) {
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	spans := partition(k, workers)

	// Operand blocks and zeroed partials are prepared before the fork so that
	// workers touch nothing but their own slot.
	aBlocks := make([]*matrix.Dense[T], len(spans))
	bBlocks := make([]*matrix.Dense[T], len(spans))
	partials := make([]*matrix.Dense[T], len(spans))
	var err error
	for w, s := range spans {
		if aBlocks[w], err = a.Split(0, m, s.lo, s.hi); err != nil {
			return nil, err
		}
		if bBlocks[w], err = b.Split(s.lo, s.hi, 0, n); err != nil {
			return nil, err
		}
		if partials[w], err = matrix.NewDense[T](m, n); err != nil {
			return nil, err
		}
	}

	var g errgroup.Group
	for w := range spans {
		w := w
		g.Go(func() error {
			reorderedInto(aBlocks[w], bBlocks[w], partials[w])
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	c := partials[0]
	for _, p := range partials[1:] {
		if err = matrix.AddInPlace(c, p); err != nil {
			return nil, err
		}
	}

	return c, nil
}
