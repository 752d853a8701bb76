package fft

// MixedRadix computes an unnormalized size-n transform by recursive
// Cooley-Tukey decomposition over the given stage radices
// (n = product of radices). twiddle is the full size-n table for the
// desired direction and scratch must hold at least n elements.
//
// dst and src must not alias; the plan routes in-place calls through
// its own staging buffer before reaching this kernel.
func MixedRadix[T Complex](dst, src []T, radices []int, twiddle, scratch []T) {
	mixedRadixRecurse(dst, src, len(twiddle), 1, radices, twiddle, scratch)
}

// mixedRadixRecurse transforms the length-n subsequence src[0],
// src[stride], src[2·stride], ... into dst[0:n]. The twiddle table
// always belongs to the full transform; the subtransform's roots of
// unity live at multiples of stride within it (n·stride == len(twiddle)
// holds at every level).
func mixedRadixRecurse[T Complex](dst, src []T, n, stride int, radices []int, twiddle, scratch []T) {
	if n == 1 {
		dst[0] = src[0]
		return
	}

	radix := radices[0]
	m := n / radix

	// Decimate: sub-transform j sees src[j·stride], src[(j+radix)·stride], ...
	for j := 0; j < radix; j++ {
		mixedRadixRecurse(dst[j*m:(j+1)*m], src[j*stride:], m, stride*radix, radices[1:], twiddle, scratch)
	}

	// Combine: X[q+p·m] = Σ_j W_n^{j·(q+p·m)} · F_j[q].
	full := len(twiddle)
	for q := 0; q < m; q++ {
		for p := 0; p < radix; p++ {
			k := q + p*m

			var sum T
			for j := 0; j < radix; j++ {
				idx := (j * k * stride) % full
				sum += dst[j*m+q] * twiddle[idx]
			}

			scratch[k] = sum
		}
	}

	copy(dst[:n], scratch[:n])
}
