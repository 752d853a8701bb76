package capi

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/cwbudde/fourier"
)

func mustCreate(t *testing.T, n int, dir Direction, dtype DataType) Handle {
	t.Helper()

	h, st := CreatePlan(n, dir, dtype)
	if st != StatusOK {
		t.Fatalf("CreatePlan(%d, %d, %d) = %v", n, dir, dtype, st)
	}

	t.Cleanup(func() { DestroyPlan(h) })

	return h
}

func TestCreatePlanValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		length int
		dir    Direction
		dtype  DataType
		want   Status
	}{
		{"zero length", 0, DirectionForward, TypeComplex128, StatusInvalidLength},
		{"negative length", -3, DirectionForward, TypeComplex128, StatusInvalidLength},
		{"bad direction", 8, Direction(7), TypeComplex128, StatusInvalidArgument},
		{"bad type", 8, DirectionForward, DataType(9), StatusInvalidArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h, st := CreatePlan(tc.length, tc.dir, tc.dtype)
			if st != tc.want {
				t.Errorf("status = %v, want %v", st, tc.want)
			}

			if h != 0 {
				t.Errorf("handle = %d, want 0 on failure", h)
			}
		})
	}
}

func TestHandleLifecycle(t *testing.T) {
	t.Parallel()

	h, st := CreatePlan(16, DirectionForward, TypeComplex128)
	if st != StatusOK {
		t.Fatalf("CreatePlan: %v", st)
	}

	if h == 0 {
		t.Fatal("handle 0 was issued")
	}

	n, dir, dtype, st := PlanInfo(h)
	if st != StatusOK || n != 16 || dir != DirectionForward || dtype != TypeComplex128 {
		t.Errorf("PlanInfo = (%d, %d, %d, %v)", n, dir, dtype, st)
	}

	if st := DestroyPlan(h); st != StatusOK {
		t.Errorf("DestroyPlan: %v", st)
	}

	// Every use of a destroyed handle fails the same way.
	if st := DestroyPlan(h); st != StatusInvalidHandle {
		t.Errorf("double destroy: %v", st)
	}

	if _, _, _, st := PlanInfo(h); st != StatusInvalidHandle {
		t.Errorf("PlanInfo after destroy: %v", st)
	}

	buf := make([]complex128, 16)
	if st := Execute128(h, buf, buf); st != StatusInvalidHandle {
		t.Errorf("Execute128 after destroy: %v", st)
	}
}

func TestInvalidHandles(t *testing.T) {
	t.Parallel()

	buf := make([]complex128, 4)

	for _, h := range []Handle{0, 0xdeadbeef} {
		t.Run(fmt.Sprintf("handle=%d", h), func(t *testing.T) {
			t.Parallel()

			if st := Execute128(h, buf, buf); st != StatusInvalidHandle {
				t.Errorf("Execute128: %v", st)
			}

			if st := DestroyPlan(h); st != StatusInvalidHandle {
				t.Errorf("DestroyPlan: %v", st)
			}
		})
	}
}

func TestExecuteTypeMismatch(t *testing.T) {
	t.Parallel()

	h := mustCreate(t, 8, DirectionForward, TypeComplex128)

	buf := make([]complex64, 8)
	if st := Execute64(h, buf, buf); st != StatusInvalidArgument {
		t.Errorf("Execute64 on complex128 plan: %v", st)
	}

	h32 := mustCreate(t, 8, DirectionForward, TypeComplex64)

	buf128 := make([]complex128, 8)
	if st := Execute128(h32, buf128, buf128); st != StatusInvalidArgument {
		t.Errorf("Execute128 on complex64 plan: %v", st)
	}
}

func TestExecuteLengthMismatchWritesNothing(t *testing.T) {
	t.Parallel()

	h := mustCreate(t, 8, DirectionForward, TypeComplex128)

	src := make([]complex128, 8)
	dst := make([]complex128, 7)
	for i := range dst {
		dst[i] = complex(42, 42)
	}

	if st := Execute128(h, dst, src); st != StatusLengthMismatch {
		t.Errorf("short dst: %v", st)
	}

	for i, v := range dst {
		if v != complex(42, 42) {
			t.Fatalf("dst[%d] was written: %v", i, v)
		}
	}

	if st := Execute128(h, make([]complex128, 8), make([]complex128, 9)); st != StatusLengthMismatch {
		t.Errorf("long src: %v", st)
	}
}

func TestExecuteMatchesPlan(t *testing.T) {
	t.Parallel()

	const n = 60

	rnd := rand.New(rand.NewSource(7))
	src := make([]complex128, n)
	for i := range src {
		src[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
	}

	fwd := mustCreate(t, n, DirectionForward, TypeComplex128)
	inv := mustCreate(t, n, DirectionInverse, TypeComplex128)

	spectrum := make([]complex128, n)
	if st := Execute128(fwd, spectrum, src); st != StatusOK {
		t.Fatalf("forward: %v", st)
	}

	p, err := fourier.NewPlanT[complex128](n)
	if err != nil {
		t.Fatalf("NewPlanT: %v", err)
	}

	want := make([]complex128, n)
	if err := p.Forward(want, src); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	for i := range want {
		if d := cmplx.Abs(spectrum[i] - want[i]); d > 1e-9 {
			t.Fatalf("bin %d: boundary %v, library %v", i, spectrum[i], want[i])
		}
	}

	// A direction-bound inverse plan undoes the forward plan.
	back := make([]complex128, n)
	if st := Execute128(inv, back, spectrum); st != StatusOK {
		t.Fatalf("inverse: %v", st)
	}

	for i := range src {
		if d := cmplx.Abs(back[i] - src[i]); d > 1e-9 {
			t.Fatalf("sample %d: round trip %v, want %v", i, back[i], src[i])
		}
	}
}

func TestExecute64(t *testing.T) {
	t.Parallel()

	const n = 16

	h := mustCreate(t, n, DirectionForward, TypeComplex64)

	src := make([]complex64, n)
	src[0] = 1 // impulse

	dst := make([]complex64, n)
	if st := Execute64(h, dst, src); st != StatusOK {
		t.Fatalf("Execute64: %v", st)
	}

	for i, v := range dst {
		if d := cmplx.Abs(complex128(v) - 1); d > 1e-5 {
			t.Fatalf("bin %d of impulse spectrum = %v, want 1", i, v)
		}
	}
}

func TestExecuteBuffers(t *testing.T) {
	t.Parallel()

	const n = 16

	h := mustCreate(t, n, DirectionForward, TypeComplex128)

	src := make([]complex128, n)
	src[0] = 1

	dst := make([]complex128, n)

	in := unsafe.Pointer(&src[0])
	out := unsafe.Pointer(&dst[0])

	if st := ExecuteBuffers(h, in, out, n, n); st != StatusOK {
		t.Fatalf("ExecuteBuffers: %v", st)
	}

	want := make([]complex128, n)
	if st := Execute128(h, want, src); st != StatusOK {
		t.Fatalf("Execute128: %v", st)
	}

	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("bin %d: raw %v, slice %v", i, dst[i], want[i])
		}
	}
}

// TestExecuteBuffersDegenerateLengths feeds lengths no buffer can
// have. They must come back as a plain mismatch with the output
// untouched; in particular nothing may fault while viewing the raw
// pointers.
func TestExecuteBuffersDegenerateLengths(t *testing.T) {
	t.Parallel()

	const n = 16

	h := mustCreate(t, n, DirectionForward, TypeComplex128)

	src := make([]complex128, n)
	dst := make([]complex128, n)
	for i := range dst {
		dst[i] = complex(42, 42)
	}

	in := unsafe.Pointer(&src[0])
	out := unsafe.Pointer(&dst[0])

	cases := []struct {
		name          string
		inLen, outLen uint64
	}{
		{"input beyond int range", 1 << 63, n},
		{"output beyond int range", n, 1 << 63},
		{"both max uint64", math.MaxUint64, math.MaxUint64},
		{"merely wrong", n - 1, n},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if st := ExecuteBuffers(h, in, out, tc.inLen, tc.outLen); st != StatusLengthMismatch {
				t.Errorf("status = %v, want %v", st, StatusLengthMismatch)
			}
		})
	}

	for i, v := range dst {
		if v != complex(42, 42) {
			t.Fatalf("dst[%d] was written: %v", i, v)
		}
	}
}

func TestExecuteBuffersValidation(t *testing.T) {
	t.Parallel()

	const n = 8

	h := mustCreate(t, n, DirectionForward, TypeComplex128)

	buf := make([]complex128, n)
	p := unsafe.Pointer(&buf[0])

	if st := ExecuteBuffers(h, nil, p, n, n); st != StatusNullPointer {
		t.Errorf("nil input: %v", st)
	}

	if st := ExecuteBuffers(h, p, nil, n, n); st != StatusNullPointer {
		t.Errorf("nil output: %v", st)
	}

	if st := ExecuteBuffers(0, p, p, n, n); st != StatusInvalidHandle {
		t.Errorf("zero handle: %v", st)
	}
}

func TestStatusStrings(t *testing.T) {
	t.Parallel()

	codes := []Status{
		StatusOK, StatusInvalidLength, StatusNullPointer,
		StatusLengthMismatch, StatusAllocFailure, StatusInvalidHandle,
		StatusInvalidArgument, StatusInternal,
	}

	seen := make(map[string]bool)
	for _, s := range codes {
		if s.String() == "FOURIER_STATUS_UNKNOWN" {
			t.Errorf("code %d has no name", s)
		}

		if s.Message() == "unknown status code" {
			t.Errorf("code %d has no message", s)
		}

		if seen[s.String()] {
			t.Errorf("duplicate name %q", s.String())
		}
		seen[s.String()] = true
	}

	if Status(99).String() != "FOURIER_STATUS_UNKNOWN" {
		t.Error("out-of-range status should report unknown")
	}
}

func TestStatusFromError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want Status
	}{
		{nil, StatusOK},
		{fourier.ErrInvalidLength, StatusInvalidLength},
		{fourier.ErrNilSlice, StatusNullPointer},
		{fourier.ErrLengthMismatch, StatusLengthMismatch},
		{fourier.ErrInvalidStrategy, StatusInvalidArgument},
		{fmt.Errorf("wrapped: %w", fourier.ErrInvalidLength), StatusInvalidLength},
		{errors.New("something else"), StatusInternal},
	}

	for _, tc := range cases {
		if got := statusFromError(tc.err); got != tc.want {
			t.Errorf("statusFromError(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestGuardRecovers(t *testing.T) {
	t.Parallel()

	st := func() (st Status) {
		defer guard(&st)
		panic("boundary fault")
	}()

	if st != StatusInternal {
		t.Errorf("guarded panic reported %v, want %v", st, StatusInternal)
	}
}
