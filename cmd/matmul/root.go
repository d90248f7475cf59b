// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logFormat string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:           "matmul",
		Short:         "Benchmark and verify dense matrix multiplication algorithms",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&gf.logFormat, "log-format", "text", "log output format: text or json")
	root.PersistentFlags().StringVar(&gf.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(newBenchCmd(gf), newVerifyCmd(gf), newHostCmd())
	return root
}

// newLogger builds the slog logger selected by the global flags.
func (gf *globalFlags) newLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(gf.logLevel)); err != nil {
		return nil, fmt.Errorf("--log-level %q: %w", gf.logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(gf.logFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("--log-format %q: want text or json", gf.logFormat)
	}
}
