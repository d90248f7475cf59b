// SPDX-License-Identifier: MIT

// Package matrix: element constraint shared by Dense and the multiply kernels.
package matrix

// Number is the set of element types a Dense may hold.
// Integer kinds give exact, order-independent arithmetic (modulo wrap-around),
// which is what makes every multiply variant bit-for-bit comparable.
// Floating kinds are accepted, but results of different algorithms may differ
// in the last ulp because summation order differs.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
