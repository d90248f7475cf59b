// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matmul/multiply"
	"github.com/katalvlaran/matmul/timing"
)

func newVerifyCmd(gf *globalFlags) *cobra.Command {
	pf := &problemFlags{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every selected algorithm against the naive triple loop",
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

			ref, err := multiply.Naive(a, b)
			if err != nil {
				return err
			}
			outs, err := runAll(timing.NewRecorder("verify", nil), logger, algs, a, b)
			if err != nil {
				return err
			}
			if err = crossCheck(logger, "naive", ref, outs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d algorithm(s) match naive on %dx%d × %dx%d\n", len(outs), pf.m, pf.k, pf.k, pf.n)

			return nil
		},
	}
	// Odd defaults push DivideConquer through its padding path.
	pf.register(cmd, 97, 65, 81)

	return cmd
}
