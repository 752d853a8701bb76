package fft

// Direct computes the transform by straight O(n²) summation over the
// direction's twiddle table. dst and src must not alias. It is the
// slowest path and the arbiter: every other kernel is tested against
// it.
func Direct[T Complex](dst, src, twiddle []T) {
	n := len(src)

	for k := 0; k < n; k++ {
		var sum T

		idx := 0
		for j := 0; j < n; j++ {
			sum += src[j] * twiddle[idx]

			idx += k
			if idx >= n {
				idx -= n
			}
		}

		dst[k] = sum
	}
}
