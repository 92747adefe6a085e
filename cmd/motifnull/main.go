// SPDX-License-Identifier: MIT
// Command motifnull computes triad censuses and modularity partitions of
// edge-list graphs and scores them against a degree-preserving null model.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
