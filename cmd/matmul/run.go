// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/multiply"
	"github.com/katalvlaran/matmul/timing"
)

// outcome is the product computed by one algorithm.
type outcome struct {
	name    string
	product *matrix.Dense[elem]
}

// errMismatch reports that at least one algorithm disagreed with the reference.
var errMismatch = errors.New("results disagree with the reference product")

// runAll times every algorithm on (a, b). Algorithms that are declared but
// not implemented are logged and skipped; any other failure aborts the run.
func runAll(rec *timing.Recorder, logger *slog.Logger, algs []algorithm, a, b *matrix.Dense[elem]) ([]outcome, error) {
	out := make([]outcome, 0, len(algs))
	for _, alg := range algs {
		var c *matrix.Dense[elem]
		err := rec.Time(alg.name, func() error {
			var err error
			c, err = alg.run(a, b)
			return err
		})
		if errors.Is(err, multiply.ErrNotImplemented) {
			logger.Warn("algorithm skipped", slog.String("algorithm", alg.name), slog.Any("error", err))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", alg.name, err)
		}
		out = append(out, outcome{name: alg.name, product: c})
	}

	return out, nil
}

// crossCheck compares every outcome against ref and logs the first mismatch
// of each disagreeing algorithm. It returns errMismatch if any disagreed.
func crossCheck(logger *slog.Logger, refName string, ref *matrix.Dense[elem], outs []outcome) error {
	bad := 0
	for _, o := range outs {
		mm, differ := matrix.FirstMismatch(ref, o.product)
		if !differ {
			logger.Debug("result verified", slog.String("algorithm", o.name), slog.String("reference", refName))
			continue
		}
		bad++
		logger.Error("result mismatch",
			slog.String("algorithm", o.name),
			slog.String("reference", refName),
			slog.Any("mismatch", mm))
	}
	if bad > 0 {
		return fmt.Errorf("%d algorithm(s): %w", bad, errMismatch)
	}

	return nil
}
