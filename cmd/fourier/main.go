// Command fourier is the developer tool around the transform library:
// benchmarking, wisdom generation, and quick spectrum inspection.
package main

import (
	"os"

	"github.com/cwbudde/fourier/cmd/fourier/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
