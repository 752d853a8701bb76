// Package fourier computes discrete Fourier transforms for sequences
// of arbitrary length.
//
// A Plan precomputes everything a given transform length needs
// (factorization, twiddle tables, scratch), so repeated transforms pay
// setup cost once. Power-of-two lengths run an iterative radix-2
// algorithm, other smooth lengths a recursive mixed-radix
// decomposition, and lengths with large prime factors fall back to the
// chirp-z (Bluestein) algorithm, so every n >= 1 is handled in
// O(n log n).
//
// The forward transform is unnormalized; the inverse scales by 1/n,
// so Inverse(Forward(x)) == x up to floating-point error.
//
// Plans own their scratch buffers and are therefore not safe for
// concurrent use; create one plan per goroutine.
//
// The exported C interface built from cmd/libfourier exposes plan
// creation, execution and destruction to foreign callers; see
// include/fourier.h.
package fourier

// FFT computes the unnormalized forward transform of x into a new
// slice, building a throwaway plan. For repeated transforms of one
// size, create a Plan instead.
func FFT(x []complex128) ([]complex128, error) {
	p, err := NewPlanT[complex128](len(x))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(x))
	if err := p.Forward(out, x); err != nil {
		return nil, err
	}

	return out, nil
}

// IFFT computes the 1/n-scaled inverse transform of x into a new
// slice.
func IFFT(x []complex128) ([]complex128, error) {
	p, err := NewPlanT[complex128](len(x))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(x))
	if err := p.Inverse(out, x); err != nil {
		return nil, err
	}

	return out, nil
}
