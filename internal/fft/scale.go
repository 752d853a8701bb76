package fft

// ScaleInPlace multiplies each element of dst by scale. The inverse
// transform uses this for its 1/n normalization.
func ScaleInPlace[T Complex](dst []T, scale float64) {
	if scale == 1 {
		return
	}

	switch d := any(dst).(type) {
	case []complex64:
		factor := complex(float32(scale), 0)
		for i := range d {
			d[i] *= factor
		}
	case []complex128:
		factor := complex(scale, 0)
		for i := range d {
			d[i] *= factor
		}
	}
}
