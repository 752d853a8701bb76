package fourier

import (
	"math/cmplx"
	"math/rand"
	"testing"
)

// Absolute comparison tolerances, scaled by callers where transform
// magnitudes grow with n.
const (
	testTol64  = 2e-3
	testTol128 = 1e-8
)

func randomComplex64(n int, seed int64) []complex64 {
	rnd := rand.New(rand.NewSource(seed))

	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(float32(rnd.Float64()*2-1), float32(rnd.Float64()*2-1))
	}

	return out
}

func randomComplex128(n int, seed int64) []complex128 {
	rnd := rand.New(rand.NewSource(seed))

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
	}

	return out
}

func randomFloat64(n int, seed int64) []float64 {
	rnd := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	for i := range out {
		out[i] = rnd.Float64()*2 - 1
	}

	return out
}

func assertComplex64SliceClose(t *testing.T, got, want []complex64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range got {
		if diff := cmplx.Abs(complex128(got[i] - want[i])); diff > tol {
			t.Fatalf("element %d: got %v want %v (diff=%e)", i, got[i], want[i], diff)
		}
	}
}

func assertComplex128SliceClose(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range got {
		if diff := cmplx.Abs(got[i] - want[i]); diff > tol {
			t.Fatalf("element %d: got %v want %v (diff=%e)", i, got[i], want[i], diff)
		}
	}
}

func assertFloat64SliceClose(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range got {
		diff := got[i] - want[i]
		if diff < 0 {
			diff = -diff
		}

		if diff > tol {
			t.Fatalf("element %d: got %v want %v (diff=%e)", i, got[i], want[i], diff)
		}
	}
}
