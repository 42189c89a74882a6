// Command metronet plays the metro corruption exercise from the terminal:
// generate stations, build the shortest network, and see what an excluded
// connection costs.
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
