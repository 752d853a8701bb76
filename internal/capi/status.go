// Package capi implements the language-boundary layer behind the
// exported C interface: status codes, the handle registry, and the
// guard that keeps panics from unwinding into foreign callers. It is
// pure Go so the whole contract is testable without cgo; the thin
// //export wrappers live in cmd/libfourier.
package capi

import (
	"errors"

	"github.com/cwbudde/fourier"
)

// Status is the closed set of result codes returned by every boundary
// call. Values are part of the ABI and mirrored in include/fourier.h;
// never renumber.
type Status int32

const (
	StatusOK              Status = 0
	StatusInvalidLength   Status = 1
	StatusNullPointer     Status = 2
	StatusLengthMismatch  Status = 3
	StatusAllocFailure    Status = 4
	StatusInvalidHandle   Status = 5
	StatusInvalidArgument Status = 6
	StatusInternal        Status = 7
)

// String returns the symbolic name of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "FOURIER_STATUS_OK"
	case StatusInvalidLength:
		return "FOURIER_STATUS_INVALID_LENGTH"
	case StatusNullPointer:
		return "FOURIER_STATUS_NULL_POINTER"
	case StatusLengthMismatch:
		return "FOURIER_STATUS_LENGTH_MISMATCH"
	case StatusAllocFailure:
		return "FOURIER_STATUS_ALLOC_FAILURE"
	case StatusInvalidHandle:
		return "FOURIER_STATUS_INVALID_HANDLE"
	case StatusInvalidArgument:
		return "FOURIER_STATUS_INVALID_ARGUMENT"
	case StatusInternal:
		return "FOURIER_STATUS_INTERNAL"
	default:
		return "FOURIER_STATUS_UNKNOWN"
	}
}

// Message returns the human-readable diagnostic for the status, the
// text served by fourier_status_string.
func (s Status) Message() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidLength:
		return "transform length is invalid"
	case StatusNullPointer:
		return "a required pointer argument is null"
	case StatusLengthMismatch:
		return "buffer length does not match the plan's length"
	case StatusAllocFailure:
		return "memory allocation failed during plan construction"
	case StatusInvalidHandle:
		return "handle is null, stale, or was not issued by this library"
	case StatusInvalidArgument:
		return "direction or data type value is out of range"
	case StatusInternal:
		return "internal fault caught at the library boundary"
	default:
		return "unknown status code"
	}
}

// statusFromError maps the library's sentinel errors onto boundary
// status codes. Anything unrecognized is an internal fault, never a
// silent success.
func statusFromError(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, fourier.ErrInvalidLength):
		return StatusInvalidLength
	case errors.Is(err, fourier.ErrNilSlice):
		return StatusNullPointer
	case errors.Is(err, fourier.ErrLengthMismatch):
		return StatusLengthMismatch
	case errors.Is(err, fourier.ErrInvalidStrategy):
		return StatusInvalidArgument
	default:
		return StatusInternal
	}
}

// guard converts a panic into StatusInternal. Every entry point defers
// it so no unwind ever crosses into foreign code.
func guard(st *Status) {
	if r := recover(); r != nil {
		*st = StatusInternal
	}
}
