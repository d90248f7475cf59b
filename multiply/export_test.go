// SPDX-License-Identifier: MIT

package multiply

// Test bridge: exposes unexported helpers to multiply_test only. The file is
// compiled solely by `go test`, so the production API stays unchanged.

// PartitionForTest returns partition(n, parts) as [lo, hi) pairs.
func PartitionForTest(n, parts int) [][2]int {
	spans := partition(n, parts)
	out := make([][2]int, len(spans))
	for i, s := range spans {
		out[i] = [2]int{s.lo, s.hi}
	}

	return out
}
