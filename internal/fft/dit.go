package fft

// DITRadix2 computes an unnormalized size-n transform using the
// iterative radix-2 decimation-in-time algorithm. n = len(bitrev) must
// be a power of two, twiddle must be the size-n table for the desired
// direction, and dst may alias src (the permutation is an involution,
// so the in-place path swaps pairs).
//
// The inverse direction is obtained by passing the conjugate twiddle
// table; the caller owns the 1/n scaling.
func DITRadix2[T Complex](dst, src, twiddle []T, bitrev []int) {
	n := len(bitrev)

	if SameSlice(dst, src) {
		for i, r := range bitrev {
			if i < r {
				dst[i], dst[r] = dst[r], dst[i]
			}
		}
	} else {
		for i, r := range bitrev {
			dst[i] = src[r]
		}
	}

	for span := 2; span <= n; span <<= 1 {
		half := span >> 1
		step := n / span

		for base := 0; base < n; base += span {
			for j := 0; j < half; j++ {
				w := twiddle[j*step]
				lo := base + j
				hi := lo + half

				odd := w * dst[hi]
				even := dst[lo]
				dst[lo] = even + odd
				dst[hi] = even - odd
			}
		}
	}
}
