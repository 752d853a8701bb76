package fourier

import "math"

// PlanReal64 transforms real float64 input using a half-size complex
// plan: the even/odd samples are packed into n/2 complex values,
// transformed once, and recombined into the n/2+1 bins of the half
// spectrum (the upper bins are the conjugate mirror and are not
// stored).
//
// Like Plan, a PlanReal64 is single-threaded-execution-only per
// instance.
type PlanReal64 struct {
	n      int
	half   int
	weight []complex128 // exp(-2πik/n) for k = 0..n/2
	buf    []complex128
	inner  *Plan[complex128]
}

// NewPlanReal64 creates a real-input plan. The length n must be even
// and >= 2.
func NewPlanReal64(n int, opts PlanOptions) (*PlanReal64, error) {
	if n < 2 || n%2 != 0 {
		return nil, ErrInvalidLength
	}

	inner, err := NewPlan[complex128](n/2, opts)
	if err != nil {
		return nil, err
	}

	half := n / 2

	weight := make([]complex128, half+1)
	for k := range weight {
		angle := -2 * math.Pi * float64(k) / float64(n)
		weight[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	return &PlanReal64{
		n:      n,
		half:   half,
		weight: weight,
		buf:    make([]complex128, half),
		inner:  inner,
	}, nil
}

// Len returns the number of real samples.
func (p *PlanReal64) Len() int {
	return p.n
}

// SpectrumLen returns the number of complex frequency bins (n/2+1).
func (p *PlanReal64) SpectrumLen() int {
	return p.half + 1
}

// Forward computes the unnormalized half spectrum of src.
// len(src) must be n and len(dst) must be n/2+1.
func (p *PlanReal64) Forward(dst []complex128, src []float64) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(src) != p.n || len(dst) != p.half+1 {
		return ErrLengthMismatch
	}

	buf := p.buf
	for k := 0; k < p.half; k++ {
		buf[k] = complex(src[2*k], src[2*k+1])
	}

	if err := p.inner.Forward(buf, buf); err != nil {
		return err
	}

	// DC and Nyquist come straight from the packed bin 0.
	dst[0] = complex(real(buf[0])+imag(buf[0]), 0)
	dst[p.half] = complex(real(buf[0])-imag(buf[0]), 0)

	// X[k] = E[k] + W^k·O[k], where E/O are the even/odd-sample
	// spectra recovered from the packed transform's symmetry.
	for k := 1; k < p.half; k++ {
		zk := buf[k]
		zc := conj128(buf[p.half-k])

		even := (zk + zc) * complex(0.5, 0)
		odd := (zk - zc) * complex(0, -0.5)

		dst[k] = even + p.weight[k]*odd
	}

	return nil
}

// Inverse reconstructs n real samples from the n/2+1-bin half
// spectrum, with 1/n scaling. len(src) must be n/2+1 and len(dst)
// must be n.
func (p *PlanReal64) Inverse(dst []float64, src []complex128) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != p.n || len(src) != p.half+1 {
		return ErrLengthMismatch
	}

	buf := p.buf
	for k := 0; k < p.half; k++ {
		xk := src[k]
		xc := conj128(src[p.half-k])

		even := (xk + xc) * complex(0.5, 0)
		wodd := (xk - xc) * complex(0.5, 0)
		odd := wodd * conj128(p.weight[k])

		buf[k] = even + odd*complex(0, 1)
	}

	if err := p.inner.Inverse(buf, buf); err != nil {
		return err
	}

	for k := 0; k < p.half; k++ {
		dst[2*k] = real(buf[k])
		dst[2*k+1] = imag(buf[k])
	}

	return nil
}

func conj128(v complex128) complex128 {
	return complex(real(v), -imag(v))
}
