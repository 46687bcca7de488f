// Command vocabctl runs the maintenance routines against the store: seeding,
// importing, deduplication, wiping and dumping.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
