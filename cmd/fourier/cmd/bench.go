package cmd

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/fourier"
	"github.com/cwbudde/fourier/internal/fftypes"
)

var (
	benchSizes    string
	benchIters    int
	benchWarmup   int
	benchSeed     int64
	benchStrategy string
	benchWisdom   string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark transform strategies per size",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchSizes, "sizes", "1024,4096,16384,65536", "comma-separated transform sizes")
	benchCmd.Flags().IntVar(&benchIters, "iters", 50, "benchmark iterations")
	benchCmd.Flags().IntVar(&benchWarmup, "warmup", 5, "warmup iterations")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1, "rng seed")
	benchCmd.Flags().StringVar(&benchStrategy, "strategy", "auto", "strategy: auto, dit, mixed-radix, bluestein, direct")
	benchCmd.Flags().StringVar(&benchWisdom, "wisdom", "", "measure all strategies and export wisdom to file")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	sizes, err := parseSizes(benchSizes)
	if err != nil {
		return err
	}

	strategy, ok := fftypes.ParseStrategy(benchStrategy)
	if !ok {
		return fmt.Errorf("unknown strategy %q", benchStrategy)
	}

	rnd := rand.New(rand.NewSource(benchSeed))

	var wisdom *fourier.Wisdom
	opts := fourier.PlanOptions{Strategy: strategy}
	if benchWisdom != "" {
		wisdom = fourier.NewWisdom()
		opts = fourier.PlanOptions{Planner: fourier.PlannerMeasure, Wisdom: wisdom}
	}

	fmt.Printf("iters=%d warmup=%d\n", benchIters, benchWarmup)
	fmt.Printf("%8s  %12s  %12s  %12s\n", "size", "strategy", "setup", "ns/op")

	planner := fourier.NewPlanner(opts)

	for _, n := range sizes {
		setupStart := time.Now()

		plan, err := planner.Plan1D64(n)
		if err != nil {
			return fmt.Errorf("size %d: %w", n, err)
		}

		setup := time.Since(setupStart)

		src := make([]complex128, n)
		for i := range src {
			src[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
		}
		dst := make([]complex128, n)

		for range benchWarmup {
			if err := plan.Forward(dst, src); err != nil {
				return err
			}
		}

		start := time.Now()
		for range benchIters {
			if err := plan.Forward(dst, src); err != nil {
				return err
			}
		}
		perOp := float64(time.Since(start).Nanoseconds()) / float64(benchIters)

		fmt.Printf("%8d  %12s  %12s  %12.0f\n", n, plan.Strategy(), setup.Round(time.Microsecond), perOp)
	}

	if benchWisdom != "" {
		if err := fourier.ExportWisdomTo(benchWisdom, wisdom); err != nil {
			return err
		}

		slog.Info("wisdom exported", "file", benchWisdom, "entries", wisdom.Len())
	}

	return nil
}

func parseSizes(list string) ([]int, error) {
	parts := strings.Split(list, ",")
	sizes := make([]int, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid size %q", part)
		}

		sizes = append(sizes, n)
	}

	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes specified")
	}

	return sizes, nil
}
