// Package planner decides which kernel a plan of a given length runs.
package planner

import (
	"github.com/cwbudde/fourier/internal/cpu"
	"github.com/cwbudde/fourier/internal/fftypes"
	imath "github.com/cwbudde/fourier/internal/math"
)

// Decision is the planner's verdict for one transform length.
type Decision struct {
	Strategy fftypes.Strategy

	// Radices holds the mixed-radix stage walk (empty otherwise).
	Radices []int

	// BluesteinM is the inner power-of-two length for the chirp-z
	// fallback (zero otherwise).
	BluesteinM int
}

// Compatible reports whether a strategy can run a length-n transform
// at all.
func Compatible(s fftypes.Strategy, n int) bool {
	if n < 1 {
		return false
	}

	switch s {
	case fftypes.StrategyDIT:
		return imath.IsPowerOf2(n)
	case fftypes.StrategyMixedRadix:
		return imath.IsSmooth(n, imath.MaxSmoothFactor)
	case fftypes.StrategyBluestein, fftypes.StrategyDirect, fftypes.StrategyAuto:
		return true
	default:
		return false
	}
}

// Estimate picks a strategy for length n. A requested strategy other
// than auto is honored when compatible; ok reports false when it is
// not. With auto, an attached wisdom cache takes precedence, then the
// factorization decides: powers of two run DIT, smooth lengths run
// mixed-radix, everything else runs Bluestein. Lengths below the
// direct cutoff are not worth any setup and run the plain summation.
func Estimate(n int, requested fftypes.Strategy, features cpu.Features, wisdom *Wisdom) (Decision, bool) {
	if n < 1 {
		return Decision{}, false
	}

	strategy := requested

	if strategy == fftypes.StrategyAuto {
		if wisdom != nil {
			if cached, hit := wisdom.Lookup(n); hit && Compatible(cached, n) && cached != fftypes.StrategyAuto {
				return finalize(n, cached, features), true
			}
		}

		strategy = autoStrategy(n)
	} else if !Compatible(strategy, n) {
		return Decision{}, false
	}

	decision := finalize(n, strategy, features)

	if wisdom != nil {
		wisdom.Record(n, decision.Strategy)
	}

	return decision, true
}

// directCutoff is the length below which the O(n²) summation beats any
// decomposition's bookkeeping.
const directCutoff = 8

func autoStrategy(n int) fftypes.Strategy {
	switch {
	case n < directCutoff:
		return fftypes.StrategyDirect
	case imath.IsPowerOf2(n):
		return fftypes.StrategyDIT
	case imath.IsSmooth(n, imath.MaxSmoothFactor):
		return fftypes.StrategyMixedRadix
	default:
		return fftypes.StrategyBluestein
	}
}

func finalize(n int, strategy fftypes.Strategy, features cpu.Features) Decision {
	d := Decision{Strategy: strategy}

	switch strategy {
	case fftypes.StrategyMixedRadix:
		// Fused radix-4 stages halve the passes over the data but run
		// a wider combine loop; they pay off on wide vector units.
		d.Radices = imath.StageRadices(n, features.WideVectors())
	case fftypes.StrategyBluestein:
		d.BluesteinM = imath.NextPowerOf2(2*n - 1)
	}

	return d
}
