package fft

import (
	"math/cmplx"
	"math/rand"
	"testing"
)

// Absolute tolerances for kernel-level comparisons. complex64 carries
// roughly seven significant digits; transform magnitudes grow with n,
// so the bound is loose.
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
