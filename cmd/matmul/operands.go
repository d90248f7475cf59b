// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/multiply"
)

// elem is the element type exercised by the harness. Integer arithmetic makes
// every algorithm comparable exactly.
type elem = int64

// problemFlags describe the operands and algorithm set of one run.
type problemFlags struct {
	m, k, n   int
	fill      int64
	random    bool
	seed      int64
	limit     int
	threshold int
	workers   int
	algos     string
}

func (pf *problemFlags) register(cmd *cobra.Command, m, k, n int) {
	f := cmd.Flags()
	f.IntVar(&pf.m, "m", m, "rows of A")
	f.IntVar(&pf.k, "k", k, "cols of A / rows of B")
	f.IntVar(&pf.n, "n", n, "cols of B")
	f.Int64Var(&pf.fill, "fill", 1, "constant fill value for A and B (ignored with --random)")
	f.BoolVar(&pf.random, "random", false, "fill A and B with pseudo-random values")
	f.Int64Var(&pf.seed, "seed", matrix.DefaultSeed, "seed for --random")
	f.IntVar(&pf.limit, "limit", matrix.DefaultRandomLimit, "exclusive upper bound of random values")
	f.IntVar(&pf.threshold, "threshold", multiply.DefaultThreshold, "divide-and-conquer base-case row threshold (>= 2)")
	f.IntVar(&pf.workers, "workers", multiply.DefaultWorkers, "goroutines for the parallel algorithms")
	f.StringVar(&pf.algos, "algos", "reordered,strassen,column,row", "comma-separated algorithms: "+strings.Join(algorithmNames, ","))
}

// operands builds A (m×k) and B (k×n) as requested by the flags.
func (pf *problemFlags) operands() (*matrix.Dense[elem], *matrix.Dense[elem], error) {
	a, err := matrix.NewDense[elem](pf.m, pf.k)
	if err != nil {
		return nil, nil, fmt.Errorf("operand A: %w", err)
	}
	b, err := matrix.NewDense[elem](pf.k, pf.n)
	if err != nil {
		return nil, nil, fmt.Errorf("operand B: %w", err)
	}
	if pf.random {
		rng := rand.New(rand.NewSource(pf.seed))
		a.Randomize(rng, pf.limit)
		b.Randomize(rng, pf.limit)
	} else {
		a.Fill(pf.fill)
		b.Fill(pf.fill)
	}

	return a, b, nil
}

// algorithm is one named multiply variant bound to the run's settings.
type algorithm struct {
	name string
	run  func(a, b *matrix.Dense[elem]) (*matrix.Dense[elem], error)
}

var algorithmNames = []string{"naive", "reordered", "strassen", "column", "row", "block"}

// selectAlgorithms resolves --algos into runnable algorithms, in flag order.
func (pf *problemFlags) selectAlgorithms() ([]algorithm, error) {
	if pf.threshold < 2 {
		return nil, fmt.Errorf("--threshold %d: must be >= 2", pf.threshold)
	}
	all := map[string]algorithm{
		"naive":     {"naive", multiply.Naive[elem]},
		"reordered": {"reordered", multiply.Reordered[elem]},
		"strassen": {"strassen", func(a, b *matrix.Dense[elem]) (*matrix.Dense[elem], error) {
			return multiply.DivideConquer(a, b, multiply.WithThreshold(pf.threshold))
		}},
		"column": {"column", func(a, b *matrix.Dense[elem]) (*matrix.Dense[elem], error) {
			return multiply.Parallel(a, b, multiply.ColumnSplit{Workers: pf.workers})
		}},
		"row": {"row", func(a, b *matrix.Dense[elem]) (*matrix.Dense[elem], error) {
			return multiply.Parallel(a, b, multiply.RowSplit{Workers: pf.workers})
		}},
		"block": {"block", func(a, b *matrix.Dense[elem]) (*matrix.Dense[elem], error) {
			return multiply.Parallel(a, b, multiply.BlockSplit{})
		}},
	}

	var out []algorithm
	for _, name := range strings.Split(pf.algos, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}
		alg, ok := all[name]
		if !ok {
			return nil, fmt.Errorf("--algos: unknown algorithm %q (known: %s)", name, strings.Join(algorithmNames, ","))
		}
		out = append(out, alg)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("--algos: no algorithm selected")
	}

	return out, nil
}
