// Package reference provides naive DFT oracles for tests. They trade
// speed for obviousness and are never used on a hot path.
package reference

import "math"

// NaiveDFT computes the unnormalized forward DFT of src by definition.
func NaiveDFT(src []complex64) []complex64 {
	n := len(src)
	dst := make([]complex64, n)

	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			angle := -2 * math.Pi * float64(k*j%n) / float64(n)
			w := complex(math.Cos(angle), math.Sin(angle))
			sum += complex128(src[j]) * w
		}

		dst[k] = complex64(sum)
	}

	return dst
}

// NaiveDFT128 computes the unnormalized forward DFT of src by definition.
func NaiveDFT128(src []complex128) []complex128 {
	n := len(src)
	dst := make([]complex128, n)

	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			angle := -2 * math.Pi * float64(k*j%n) / float64(n)
			w := complex(math.Cos(angle), math.Sin(angle))
			sum += src[j] * w
		}

		dst[k] = sum
	}

	return dst
}

// NaiveIDFT128 computes the 1/n-scaled inverse DFT of src by definition.
func NaiveIDFT128(src []complex128) []complex128 {
	n := len(src)
	dst := make([]complex128, n)

	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			angle := 2 * math.Pi * float64(k*j%n) / float64(n)
			w := complex(math.Cos(angle), math.Sin(angle))
			sum += src[j] * w
		}

		dst[k] = sum / complex(float64(n), 0)
	}

	return dst
}
