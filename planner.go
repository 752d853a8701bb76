package fourier

import (
	"time"

	"github.com/cwbudde/fourier/internal/planner"
)

// PlannerMode controls how much work plan creation invests in picking
// an algorithm.
type PlannerMode uint32

const (
	// PlannerEstimate picks the strategy from the factorization alone.
	// Cheap, and right nearly always.
	PlannerEstimate PlannerMode = iota

	// PlannerMeasure times every strategy compatible with the length
	// and keeps the fastest. Plan creation becomes noticeably slower;
	// the verdict can be exported through a Wisdom cache so later runs
	// skip the measurement.
	PlannerMeasure
)

// PlanOptions configures plan creation.
type PlanOptions struct {
	// Planner selects estimate vs measure mode.
	Planner PlannerMode

	// Strategy forces a specific algorithm. StrategyAuto (the zero
	// value) lets the planner decide.
	Strategy Strategy

	// Wisdom, when non-nil, is consulted for previously recorded
	// strategy choices and receives new ones. Plans never touch any
	// global cache on their own.
	Wisdom *Wisdom
}

// Planner creates plans with a fixed set of options.
type Planner struct {
	opts PlanOptions
}

// NewPlanner returns a planner with the given options. The zero
// options value is valid: estimate mode, automatic strategy.
func NewPlanner(opts PlanOptions) *Planner {
	return &Planner{opts: opts}
}

// Plan1D32 creates a complex64 plan of length n.
func (pl *Planner) Plan1D32(n int) (*Plan[complex64], error) {
	return planWithMode[complex64](n, pl.opts)
}

// Plan1D64 creates a complex128 plan of length n.
func (pl *Planner) Plan1D64(n int) (*Plan[complex128], error) {
	return planWithMode[complex128](n, pl.opts)
}

func planWithMode[T Complex](n int, opts PlanOptions) (*Plan[T], error) {
	if opts.Planner != PlannerMeasure || opts.Strategy != StrategyAuto {
		return NewPlan[T](n, opts)
	}

	return measurePlan[T](n, opts)
}

// measureIters is the number of timed transforms per candidate. Kept
// small: strategies differ by orders of magnitude, not percent.
const measureIters = 4

// measurePlan builds every compatible candidate, times it, and keeps
// the winner. The quadratic direct kernel only competes at lengths
// where its constant factor can win.
func measurePlan[T Complex](n int, opts PlanOptions) (*Plan[T], error) {
	candidates := []Strategy{StrategyDIT, StrategyMixedRadix, StrategyBluestein}
	if n <= 64 {
		candidates = append(candidates, StrategyDirect)
	}

	var (
		best     *Plan[T]
		bestCost time.Duration
	)

	src := make([]T, n)
	dst := make([]T, n)

	for _, s := range candidates {
		if !planner.Compatible(s, n) {
			continue
		}

		p, err := NewPlan[T](n, PlanOptions{Strategy: s})
		if err != nil {
			continue
		}

		start := time.Now()
		for range measureIters {
			if err := p.Forward(dst, src); err != nil {
				return nil, err
			}
		}
		cost := time.Since(start)

		if best == nil || cost < bestCost {
			best, bestCost = p, cost
		}
	}

	if best == nil {
		return nil, ErrInvalidLength
	}

	if opts.Wisdom != nil {
		opts.Wisdom.Record(n, best.Strategy())
	}

	return best, nil
}
