package fourier

import "math"

// PlanReal32 is the float32/complex64 counterpart of PlanReal64.
type PlanReal32 struct {
	n      int
	half   int
	weight []complex64
	buf    []complex64
	inner  *Plan[complex64]
}

// NewPlanReal32 creates a real-input plan for float32 samples. The
// length n must be even and >= 2.
func NewPlanReal32(n int, opts PlanOptions) (*PlanReal32, error) {
	if n < 2 || n%2 != 0 {
		return nil, ErrInvalidLength
	}

	inner, err := NewPlan[complex64](n/2, opts)
	if err != nil {
		return nil, err
	}

	half := n / 2

	weight := make([]complex64, half+1)
	for k := range weight {
		angle := -2 * math.Pi * float64(k) / float64(n)
		weight[k] = complex(float32(math.Cos(angle)), float32(math.Sin(angle)))
	}

	return &PlanReal32{
		n:      n,
		half:   half,
		weight: weight,
		buf:    make([]complex64, half),
		inner:  inner,
	}, nil
}

// Len returns the number of real samples.
func (p *PlanReal32) Len() int {
	return p.n
}

// SpectrumLen returns the number of complex frequency bins (n/2+1).
func (p *PlanReal32) SpectrumLen() int {
	return p.half + 1
}

// Forward computes the unnormalized half spectrum of src.
// len(src) must be n and len(dst) must be n/2+1.
func (p *PlanReal32) Forward(dst []complex64, src []float32) error {
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

	dst[0] = complex(real(buf[0])+imag(buf[0]), 0)
	dst[p.half] = complex(real(buf[0])-imag(buf[0]), 0)

	for k := 1; k < p.half; k++ {
		zk := buf[k]
		zc := conj64(buf[p.half-k])

		even := (zk + zc) * complex(0.5, 0)
		odd := (zk - zc) * complex(0, -0.5)

		dst[k] = even + p.weight[k]*odd
	}

	return nil
}

// Inverse reconstructs n real samples from the half spectrum, with
// 1/n scaling. len(src) must be n/2+1 and len(dst) must be n.
func (p *PlanReal32) Inverse(dst []float32, src []complex64) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != p.n || len(src) != p.half+1 {
		return ErrLengthMismatch
	}

	buf := p.buf
	for k := 0; k < p.half; k++ {
		xk := src[k]
		xc := conj64(src[p.half-k])

		even := (xk + xc) * complex(0.5, 0)
		wodd := (xk - xc) * complex(0.5, 0)
		odd := wodd * conj64(p.weight[k])

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

func conj64(v complex64) complex64 {
	return complex(real(v), -imag(v))
}
