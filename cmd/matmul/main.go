// SPDX-License-Identifier: MIT

// Command matmul times and cross-checks the multiplication algorithms of
// package multiply.
//
//	matmul bench  --m 1000 --k 1000 --n 1000 --algos strassen,reordered,row
//	matmul verify --m 65 --k 33 --n 17 --random --seed 7
//	matmul host
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
