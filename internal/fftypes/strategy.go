package fftypes

// Strategy controls which transform algorithm a plan executes.
type Strategy uint32

const (
	// StrategyAuto lets the planner pick based on the factorization of
	// the transform length and the available CPU features.
	StrategyAuto Strategy = iota

	// StrategyDIT is the iterative radix-2 decimation-in-time algorithm
	// with a bit-reversal permutation table. Power-of-two lengths only.
	StrategyDIT

	// StrategyMixedRadix is the recursive Cooley-Tukey decomposition
	// over the prime factorization. Lengths whose prime factors are all
	// small (2, 3, 5, 7, 11, 13).
	StrategyMixedRadix

	// StrategyBluestein is the chirp-z algorithm, embedding the
	// transform into a power-of-two convolution of size >= 2n-1.
	// Works for every length; used when a large prime factor remains.
	StrategyBluestein

	// StrategyDirect is the O(n²) summation. Always correct, never
	// fast; selectable explicitly and used as the test oracle.
	StrategyDirect
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyDIT:
		return "dit"
	case StrategyMixedRadix:
		return "mixed-radix"
	case StrategyBluestein:
		return "bluestein"
	case StrategyDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name back to its value. Unknown names
// report false.
func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "auto":
		return StrategyAuto, true
	case "dit":
		return StrategyDIT, true
	case "mixed-radix":
		return StrategyMixedRadix, true
	case "bluestein":
		return StrategyBluestein, true
	case "direct":
		return StrategyDirect, true
	default:
		return StrategyAuto, false
	}
}
