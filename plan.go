package fourier

import (
	"github.com/cwbudde/fourier/internal/cpu"
	"github.com/cwbudde/fourier/internal/fft"
	imath "github.com/cwbudde/fourier/internal/math"
	"github.com/cwbudde/fourier/internal/planner"
)

// Plan holds all length-dependent state for transforms of one size:
// the factorization, twiddle tables for both directions, the
// bit-reversal or chirp-z state the chosen kernel needs, and scratch
// space. Construction is the expensive step; Forward and Inverse
// allocate nothing.
//
// A Plan accepts distinct dst/src buffers or dst == src; aliased calls
// on kernels that cannot transform in place are staged through
// plan-owned scratch.
//
// A Plan's scratch is shared mutable state: one Plan must not be used
// by concurrent Forward/Inverse calls. Callers that transform on
// multiple goroutines create one Plan per goroutine.
type Plan[T Complex] struct {
	n        int
	strategy Strategy
	factors  []int

	twiddleFwd []T
	twiddleInv []T

	radices   []int
	bitrev    []int
	bluestein *fft.Bluestein[T]

	scratch []T // mixed-radix combine buffer
	stage   []T // staging for aliased calls
	strided []T // gather/scatter buffer for strided transforms
}

// NewPlanT creates a plan of length n with default options, letting
// the planner pick the algorithm.
//
// Example:
//
//	plan, err := fourier.NewPlanT[complex128](480)
func NewPlanT[T Complex](n int) (*Plan[T], error) {
	return NewPlan[T](n, PlanOptions{})
}

// NewPlan creates a plan of length n with explicit options. It returns
// ErrInvalidLength when n < 1 or when the requested strategy cannot
// run length n, and ErrInvalidStrategy for an unknown strategy value.
func NewPlan[T Complex](n int, opts PlanOptions) (*Plan[T], error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	if opts.Strategy > StrategyDirect {
		return nil, ErrInvalidStrategy
	}

	decision, ok := planner.Estimate(n, opts.Strategy, cpu.DetectFeatures(), opts.Wisdom)
	if !ok {
		return nil, ErrInvalidLength
	}

	p := &Plan[T]{
		n:        n,
		strategy: decision.Strategy,
		factors:  imath.Factorize(n),
		stage:    make([]T, n),
		strided:  make([]T, n),
	}

	switch decision.Strategy {
	case StrategyDIT:
		p.twiddleFwd = fft.ComputeTwiddleFactors[T](n, false)
		p.twiddleInv = fft.ComputeTwiddleFactors[T](n, true)
		p.bitrev = imath.ComputeBitReversalIndices(n)
	case StrategyMixedRadix:
		p.twiddleFwd = fft.ComputeTwiddleFactors[T](n, false)
		p.twiddleInv = fft.ComputeTwiddleFactors[T](n, true)
		p.radices = decision.Radices
		p.scratch = make([]T, n)
	case StrategyBluestein:
		p.bluestein = fft.NewBluestein[T](n)
	case StrategyDirect:
		p.twiddleFwd = fft.ComputeTwiddleFactors[T](n, false)
		p.twiddleInv = fft.ComputeTwiddleFactors[T](n, true)
	default:
		return nil, ErrInvalidStrategy
	}

	return p, nil
}

// Len returns the transform length.
func (p *Plan[T]) Len() int {
	return p.n
}

// Strategy returns the algorithm the planner settled on.
func (p *Plan[T]) Strategy() Strategy {
	return p.strategy
}

// Factors returns the prime factorization of the transform length.
func (p *Plan[T]) Factors() []int {
	out := make([]int, len(p.factors))
	copy(out, p.factors)

	return out
}

// Forward computes the unnormalized forward transform
// dst[k] = Σ src[j]·exp(-2πi·k·j/n).
func (p *Plan[T]) Forward(dst, src []T) error {
	return p.transform(dst, src, false)
}

// Inverse computes the inverse transform with 1/n scaling, so that
// Inverse(Forward(x)) reproduces x up to floating-point error.
func (p *Plan[T]) Inverse(dst, src []T) error {
	return p.transform(dst, src, true)
}

// Transform computes either direction based on the inverse flag.
func (p *Plan[T]) Transform(dst, src []T, inverse bool) error {
	return p.transform(dst, src, inverse)
}

// InPlace computes the forward transform of data in place.
func (p *Plan[T]) InPlace(data []T) error {
	return p.transform(data, data, false)
}

// InverseInPlace computes the inverse transform of data in place.
func (p *Plan[T]) InverseInPlace(data []T) error {
	return p.transform(data, data, true)
}

func (p *Plan[T]) transform(dst, src []T, inverse bool) error {
	if err := p.validateSlices(dst, src); err != nil {
		return err
	}

	twiddle := p.twiddleFwd
	if inverse {
		twiddle = p.twiddleInv
	}

	switch p.strategy {
	case StrategyDIT:
		fft.DITRadix2(dst, src, twiddle, p.bitrev)
	case StrategyMixedRadix:
		fft.MixedRadix(dst, p.unalias(dst, src), p.radices, twiddle, p.scratch)
	case StrategyBluestein:
		p.bluestein.Transform(dst, src, inverse)
	case StrategyDirect:
		fft.Direct(dst, p.unalias(dst, src), twiddle)
	}

	if inverse {
		fft.ScaleInPlace(dst, 1.0/float64(p.n))
	}

	return nil
}

// unalias returns src, staged through plan scratch when it shares
// storage with dst. Kernels that read src while writing dst need this.
func (p *Plan[T]) unalias(dst, src []T) []T {
	if !fft.SameSlice(dst, src) {
		return src
	}

	copy(p.stage, src)

	return p.stage[:p.n]
}

func (p *Plan[T]) validateSlices(dst, src []T) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != p.n || len(src) != p.n {
		return ErrLengthMismatch
	}

	return nil
}
