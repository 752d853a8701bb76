package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/fourier"
)

var infoCmd = &cobra.Command{
	Use:   "info <size>...",
	Short: "Show factorization and planner verdict for transform sizes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	fmt.Printf("%10s  %12s  %24s  %12s\n", "size", "strategy", "factors", "setup")

	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid size %q", arg)
		}

		start := time.Now()

		plan, err := fourier.NewPlanT[complex128](n)
		if err != nil {
			return fmt.Errorf("size %d: %w", n, err)
		}

		setup := time.Since(start)

		fmt.Printf("%10d  %12s  %24v  %12s\n", n, plan.Strategy(), plan.Factors(), setup.Round(time.Microsecond))
	}

	return nil
}
