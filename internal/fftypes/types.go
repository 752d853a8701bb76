package fftypes

// Complex is the type constraint for complex sample types supported by
// the transform engine.
type Complex interface {
	~complex64 | ~complex128
}

// Float is the type constraint for floating-point types used by the
// real-input plans.
type Float interface {
	~float32 | ~float64
}
