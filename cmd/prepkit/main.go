// SPDX-License-Identifier: MIT

// Command prepkit labels rows into deterministic train/test partitions and
// clips numeric features to training-set quantiles.
//
//	prepkit split     --in data.csv --key id --frac 0.8
//	prepkit winsorize --in data.csv --columns amount,age --fit-on train
//	prepkit prepare   --in data.csv --config prepkit.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
