package fft

import (
	"math"

	imath "github.com/cwbudde/fourier/internal/math"
)

// ComputeChirpSequence returns the length-n chirp c[k] = exp(s·iπk²/n),
// where s is -1 for the forward direction and +1 for the inverse. The
// square is reduced mod 2n before the angle is formed, keeping the
// phase exact for large n.
func ComputeChirpSequence[T Complex](n int, inverse bool) []T {
	if n <= 0 {
		return nil
	}

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	chirp := make([]T, n)
	for k := range n {
		sq := (int64(k) * int64(k)) % int64(2*n)
		angle := sign * math.Pi * float64(sq) / float64(n)
		chirp[k] = complexFromFloat64[T](math.Cos(angle), math.Sin(angle))
	}

	return chirp
}

// Bluestein holds the precomputed chirp-z state for one transform
// length: both chirp sequences, the frequency-domain convolution
// filters, and the inner power-of-two transform tables. Everything is
// allocated at construction; Transform itself allocates nothing.
type Bluestein[T Complex] struct {
	n int // transform length
	m int // inner power-of-two convolution length, >= 2n-1

	chirpFwd []T
	chirpInv []T

	// FFT of the wrapped conjugate chirp, pre-scaled by 1/m so the
	// inner inverse pass needs no separate normalization.
	filterFwd []T
	filterInv []T

	twiddleFwd []T
	twiddleInv []T
	bitrev     []int

	work []T // length m
}

// NewBluestein precomputes chirp-z state for length n.
func NewBluestein[T Complex](n int) *Bluestein[T] {
	m := imath.NextPowerOf2(2*n - 1)

	b := &Bluestein[T]{
		n:          n,
		m:          m,
		chirpFwd:   ComputeChirpSequence[T](n, false),
		chirpInv:   ComputeChirpSequence[T](n, true),
		twiddleFwd: ComputeTwiddleFactors[T](m, false),
		twiddleInv: ComputeTwiddleFactors[T](m, true),
		bitrev:     imath.ComputeBitReversalIndices(m),
		work:       make([]T, m),
	}

	b.filterFwd = b.computeFilter(b.chirpFwd)
	b.filterInv = b.computeFilter(b.chirpInv)

	return b
}

// computeFilter builds FFT_m(wrap(conj(chirp))) / m. The conjugate
// chirp is symmetric in k², so the negative lags wrap to the tail of
// the length-m buffer.
func (b *Bluestein[T]) computeFilter(chirp []T) []T {
	filter := make([]T, b.m)

	filter[0] = conj(chirp[0])
	for j := 1; j < b.n; j++ {
		c := conj(chirp[j])
		filter[j] = c
		filter[b.m-j] = c
	}

	DITRadix2(filter, filter, b.twiddleFwd, b.bitrev)
	ScaleInPlace(filter, 1.0/float64(b.m))

	return filter
}

// Len returns the transform length n.
func (b *Bluestein[T]) Len() int {
	return b.n
}

// InnerLen returns the inner convolution length m.
func (b *Bluestein[T]) InnerLen() int {
	return b.m
}

// Transform computes the unnormalized transform of src into dst via
// chirp-z convolution. dst and src must not alias the internal work
// buffer; dst may equal src. The caller owns the inverse 1/n scaling.
func (b *Bluestein[T]) Transform(dst, src []T, inverse bool) {
	chirp := b.chirpFwd
	filter := b.filterFwd
	if inverse {
		chirp = b.chirpInv
		filter = b.filterInv
	}

	work := b.work
	for i := 0; i < b.n; i++ {
		work[i] = src[i] * chirp[i]
	}
	for i := b.n; i < b.m; i++ {
		work[i] = 0
	}

	// Circular convolution with the conjugate chirp: forward inner
	// pass, pointwise filter (1/m folded in), unnormalized inverse.
	DITRadix2(work, work, b.twiddleFwd, b.bitrev)
	for i := range work {
		work[i] *= filter[i]
	}
	DITRadix2(work, work, b.twiddleInv, b.bitrev)

	for k := 0; k < b.n; k++ {
		dst[k] = work[k] * chirp[k]
	}
}
