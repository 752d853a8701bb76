// Package fft holds the pure-Go transform kernels driven by the public
// plan types: radix-2 DIT, recursive mixed-radix, Bluestein, and the
// direct summation.
package fft

import (
	"math"

	"github.com/cwbudde/fourier/internal/fftypes"
	imath "github.com/cwbudde/fourier/internal/math"
)

// Complex is a type alias for the complex number constraint.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type alias for the float constraint.
type Float = fftypes.Float

// ComputeTwiddleFactors returns the precomputed twiddle factors (roots
// of unity) for a size-n transform: W_n^k = exp(-2πik/n) for k = 0..n-1.
// With inverse set, the sign of the exponent flips, yielding the
// conjugate table used by the inverse transform.
func ComputeTwiddleFactors[T Complex](n int, inverse bool) []T {
	if n <= 0 {
		return nil
	}

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	twiddle := make([]T, n)
	for k := range n {
		angle := sign * imath.TwoPi * float64(k) / float64(n)
		twiddle[k] = complexFromFloat64[T](math.Cos(angle), math.Sin(angle))
	}

	return twiddle
}

// complexFromFloat64 creates a complex number of type T from float64
// components.
func complexFromFloat64[T Complex](re, im float64) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		result, _ := any(complex(float32(re), float32(im))).(T)
		return result
	case complex128:
		result, _ := any(complex(re, im)).(T)
		return result
	default:
		panic("unsupported complex type")
	}
}

// conj returns the complex conjugate of val.
func conj[T Complex](val T) T {
	switch v := any(val).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case complex128:
		return any(complex(real(v), -imag(v))).(T)
	default:
		panic("unsupported complex type")
	}
}

// SameSlice reports whether a and b share the same backing array start.
// Plans use this to detect in-place calls.
func SameSlice[T any](a, b []T) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
