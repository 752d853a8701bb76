package fourier

import (
	"errors"
	"fmt"
	"testing"
)

func TestStridedMatchesContiguous(t *testing.T) {
	t.Parallel()

	for _, n := range []int{8, 60, 97} {
		for _, stride := range []int{1, 3, 7} {
			t.Run(fmt.Sprintf("n=%d/stride=%d", n, stride), func(t *testing.T) {
				t.Parallel()

				p, err := NewPlanT[complex128](n)
				if err != nil {
					t.Fatal(err)
				}

				src := randomComplex128(n, int64(n*stride))

				want := make([]complex128, n)
				if err := p.Forward(want, src); err != nil {
					t.Fatal(err)
				}

				// Spread the input out, transform, and check only the
				// strided positions were written.
				total := (n-1)*stride + 1
				spread := make([]complex128, total)
				for i := range src {
					spread[i*stride] = src[i]
				}

				out := make([]complex128, total)
				fill := complex(-7, 7)
				for i := range out {
					out[i] = fill
				}

				if err := p.ForwardStrided(out, spread, stride); err != nil {
					t.Fatal(err)
				}

				for i := 0; i < n; i++ {
					if out[i*stride] != want[i] {
						t.Fatalf("element %d: %v, want %v", i, out[i*stride], want[i])
					}
				}

				for i := range out {
					if i%stride != 0 && out[i] != fill {
						t.Fatalf("gap position %d was written: %v", i, out[i])
					}
				}
			})
		}
	}
}

func TestStridedRoundTrip(t *testing.T) {
	t.Parallel()

	const (
		n      = 30
		stride = 4
	)

	p, err := NewPlanT[complex128](n)
	if err != nil {
		t.Fatal(err)
	}

	total := (n-1)*stride + 1
	data := make([]complex128, total)
	src := randomComplex128(n, 88)
	for i := range src {
		data[i*stride] = src[i]
	}

	// In place through both directions.
	if err := p.TransformStrided(data, data, stride, false); err != nil {
		t.Fatal(err)
	}

	if err := p.InverseStrided(data, data, stride); err != nil {
		t.Fatal(err)
	}

	got := make([]complex128, n)
	for i := range got {
		got[i] = data[i*stride]
	}

	assertComplex128SliceClose(t, got, src, testTol128*float64(n))
}

func TestStridedValidation(t *testing.T) {
	t.Parallel()

	const n = 16

	p, err := NewPlanT[complex128](n)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]complex128, n*3)

	if err := p.ForwardStrided(nil, buf, 1); !errors.Is(err, ErrNilSlice) {
		t.Errorf("nil dst: %v", err)
	}

	if err := p.ForwardStrided(buf, buf, 0); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("stride 0: %v", err)
	}

	if err := p.ForwardStrided(buf, buf, -2); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("negative stride: %v", err)
	}

	// stride 4 needs (16-1)*4+1 = 61 elements, more than the 48 given
	if err := p.ForwardStrided(buf, buf, 4); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short buffer: %v", err)
	}

	// stride so large the index computation would overflow
	huge := int(^uint(0)>>1) / 2
	if err := p.ForwardStrided(buf, buf, huge); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("overflowing stride: %v", err)
	}
}
