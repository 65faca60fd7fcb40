// SPDX-License-Identifier: MIT

// Command incgraph generates typed graphs from a YAML schema.
//
//	incgraph validate --config schema.yaml
//	incgraph generate --config schema.yaml [--seed N] [--out graph.txt]
//	incgraph stats    --config schema.yaml [--seed N]
//	incgraph version
//
// The master seed is taken from the schema, then INCGRAPH_SEED, then --seed.
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
