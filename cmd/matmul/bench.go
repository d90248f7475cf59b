// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/matmul/timing"
)

func newBenchCmd(gf *globalFlags) *cobra.Command {
	pf := &problemFlags{}
	var jsonPath string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time each selected algorithm once and cross-check the products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := gf.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			algs, err := pf.selectAlgorithms()
			if err != nil {
				return err
			}
			a, b, err := pf.operands()
			if err != nil {
				return err
			}

			session := fmt.Sprintf("matmul_%dx%dx%d", pf.m, pf.k, pf.n)
			rec := timing.NewRecorder(session, logger)
			outs, err := runAll(rec, logger, algs, a, b)
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), rec.Results(), pf.m, pf.k, pf.n)
			if jsonPath != "" {
				if err = writeReport(jsonPath, rec); err != nil {
					return err
				}
			}
			if len(outs) < 2 {
				return nil
			}

			return crossCheck(logger, outs[0].name, outs[0].product, outs[1:])
		},
	}
	pf.register(cmd, 1000, 1000, 1000)
	cmd.Flags().StringVar(&jsonPath, "json", "", "write the timing report as JSON to this file")

	return cmd
}

// printReport renders one line per timed run. Multiply-add counts use
// locale-aware digit grouping.
func printReport(w io.Writer, results []timing.Result, m, k, n int) {
	p := message.NewPrinter(language.English)
	madds := int64(m) * int64(k) * int64(n)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	p.Fprintf(tw, "Problem\t%d×%d × %d×%d\t(%d multiply-adds)\n", m, k, k, n, madds)
	p.Fprintf(tw, "Function\tSeconds\tMadds/s\n")
	for _, r := range results {
		if r.Error != "" {
			p.Fprintf(tw, "%s\t-\t%s\n", r.Name, r.Error)
			continue
		}
		rate := 0.0
		if r.Seconds > 0 {
			rate = float64(madds) / r.Seconds
		}
		p.Fprintf(tw, "%s\t%.6f\t%.0f\n", r.Name, r.Seconds, rate)
	}
	_ = tw.Flush()
}

func writeReport(path string, rec *timing.Recorder) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("--json: %w", err)
	}
	if err = rec.WriteJSON(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
