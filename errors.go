package fourier

import "errors"

// Sentinel errors returned by plan construction and execution.
var (
	// ErrInvalidLength is returned when the transform length is not
	// valid: n < 1, or a length the requested strategy cannot run
	// (e.g. a non-power-of-two with StrategyDIT).
	ErrInvalidLength = errors.New("fourier: invalid transform length")

	// ErrNilSlice is returned when a nil slice is passed to a
	// transform method.
	ErrNilSlice = errors.New("fourier: nil slice")

	// ErrLengthMismatch is returned when input/output slice sizes
	// don't match the plan's configured length.
	ErrLengthMismatch = errors.New("fourier: slice length mismatch")

	// ErrInvalidStride is returned when a stride parameter is invalid
	// for the given data layout (stride < 1 or index overflow).
	ErrInvalidStride = errors.New("fourier: invalid stride")

	// ErrInvalidStrategy is returned when a plan is requested with a
	// strategy the planner does not recognize.
	ErrInvalidStrategy = errors.New("fourier: invalid strategy")
)
