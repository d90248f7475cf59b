// SPDX-License-Identifier: MIT

package multiply

// span is the half-open index range [lo, hi).
type span struct{ lo, hi int }

// partition cuts [0, n) into parts contiguous spans, span w being
// [w*n/parts, (w+1)*n/parts). The spans are pairwise disjoint, ordered, and
// cover [0, n) exactly once; some are empty when parts > n. For parts == 2
// this is the classic [0, n/2) | [n/2, n) split. parts < 1 is treated as 1.
func partition(n, parts int) []span {
	if parts < 1 {
		parts = 1
	}
	out := make([]span, parts)
	for w := range out {
		out[w] = span{lo: w * n / parts, hi: (w + 1) * n / parts}
	}

	return out
}
