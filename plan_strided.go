package fourier

// ForwardStrided computes the forward transform on strided data.
//
// The stride parameter is the distance between consecutive logical
// elements; stride=numCols transforms a matrix column stored
// row-major.
//
// Returns ErrNilSlice if dst or src is nil, ErrInvalidStride if
// stride < 1 or the index computation would overflow, and
// ErrLengthMismatch if either slice is too short for the given stride.
func (p *Plan[T]) ForwardStrided(dst, src []T, stride int) error {
	return p.transformStrided(dst, src, stride, false)
}

// InverseStrided computes the inverse transform on strided data, with
// the same validation as ForwardStrided.
func (p *Plan[T]) InverseStrided(dst, src []T, stride int) error {
	return p.transformStrided(dst, src, stride, true)
}

// TransformStrided computes either direction based on the inverse flag.
func (p *Plan[T]) TransformStrided(dst, src []T, stride int, inverse bool) error {
	return p.transformStrided(dst, src, stride, inverse)
}

func (p *Plan[T]) transformStrided(dst, src []T, stride int, inverse bool) error {
	if err := p.validateStridedSlices(dst, src, stride); err != nil {
		return err
	}

	if stride == 1 {
		return p.transform(dst[:p.n], src[:p.n], inverse)
	}

	// Gather into the strided buffer, transform in place, scatter.
	// This buffer is distinct from p.stage, which transform uses to
	// unalias the in-place call below.
	buffer := p.strided[:p.n]
	for i := 0; i < p.n; i++ {
		buffer[i] = src[i*stride]
	}

	if err := p.transform(buffer, buffer, inverse); err != nil {
		return err
	}

	for i := 0; i < p.n; i++ {
		dst[i*stride] = buffer[i]
	}

	return nil
}

func (p *Plan[T]) validateStridedSlices(dst, src []T, stride int) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if stride < 1 {
		return ErrInvalidStride
	}

	// (n-1)*stride+1 elements are touched; reject overflow first.
	if p.n > 1 && stride > (int(^uint(0)>>1)-1)/(p.n-1) {
		return ErrInvalidStride
	}

	need := (p.n-1)*stride + 1
	if len(dst) < need || len(src) < need {
		return ErrLengthMismatch
	}

	return nil
}
