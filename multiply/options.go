// SPDX-License-Identifier: MIT

// Package multiply: functional configuration for DivideConquer.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: With* constructors panic only on nonsensical
//     values (programmer error); user data never triggers a panic.
package multiply

// DefaultThreshold is the row count below which DivideConquer hands the
// product to Reordered. Below it the recursion and allocation overhead
// outweighs the saved multiplications.
const DefaultThreshold = 64

// minThreshold is the smallest threshold that still terminates: with 1 a
// 1-row operand would be padded to 2 rows and split back to 1 forever.
const minThreshold = 2

const panicThresholdInvalid = "multiply: WithThreshold: threshold must be >= 2"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	threshold int
	stats     *Stats
}

// WithThreshold sets the base-case row threshold. Panics when n < 2.
func WithThreshold(n int) Option {
	if n < minThreshold {
		panic(panicThresholdInvalid)
	}

	return func(o *options) { o.threshold = n }
}

// WithStats makes DivideConquer record its recursion profile into s.
// s is reset at the start of each call. A nil s disables recording.
func WithStats(s *Stats) Option {
	return func(o *options) { o.stats = s }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{threshold: DefaultThreshold}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
