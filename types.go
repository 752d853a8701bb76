package fourier

import "github.com/cwbudde/fourier/internal/fftypes"

// Complex is the type constraint for complex sample types supported by
// the transform engine. The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is the type constraint for floating-point types used in real
// transform operations. The canonical definition is in internal/fftypes.
type Float = fftypes.Float

// Strategy selects the transform algorithm a plan runs.
type Strategy = fftypes.Strategy

// Strategy values, re-exported from internal/fftypes.
const (
	StrategyAuto       = fftypes.StrategyAuto
	StrategyDIT        = fftypes.StrategyDIT
	StrategyMixedRadix = fftypes.StrategyMixedRadix
	StrategyBluestein  = fftypes.StrategyBluestein
	StrategyDirect     = fftypes.StrategyDirect
)
