// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

// hostFeature is one CPU capability worth knowing when reading timings.
type hostFeature struct {
	name string
	ok   bool
}

// hostFeatures lists the vector extensions relevant on the running architecture.
func hostFeatures() []hostFeature {
	switch runtime.GOARCH {
	case "amd64", "386":
		return []hostFeature{
			{"SSE4.1", cpu.X86.HasSSE41},
			{"SSE4.2", cpu.X86.HasSSE42},
			{"AVX", cpu.X86.HasAVX},
			{"AVX2", cpu.X86.HasAVX2},
			{"FMA", cpu.X86.HasFMA},
			{"AVX512F", cpu.X86.HasAVX512F},
		}
	case "arm64":
		return []hostFeature{
			{"ASIMD", cpu.ARM64.HasASIMD},
			{"FPHP", cpu.ARM64.HasFPHP},
			{"SVE", cpu.ARM64.HasSVE},
		}
	default:
		return nil
	}
}

func newHostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Print CPU features and scheduler settings of this machine",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printHost(cmd.OutOrStdout())
		},
	}
}

func printHost(w io.Writer) {
	fmt.Fprintf(w, "arch:       %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "cpus:       %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "gomaxprocs: %d\n", runtime.GOMAXPROCS(0))
	for _, f := range hostFeatures() {
		fmt.Fprintf(w, "%-11s %t\n", f.name+":", f.ok)
	}
}
