// Command libfourier builds the shared library exposing the C
// interface declared in include/fourier.h:
//
//	go build -buildmode=c-shared -o libfourier.so ./cmd/libfourier
//
// The wrappers here only translate between C types and the boundary
// layer in internal/capi; all validation, status mapping, and panic
// guarding happens there. Each wrapper still carries its own recover
// so that no unwind from the translation code itself can cross into
// the foreign caller.
package main

/*
#include <stdint.h>

// Static diagnostic strings handed out by fourier_status_string.
// Returned pointers stay valid for the life of the process and must
// not be freed by the caller.
static const char *fourier_status_messages[] = {
	"ok",
	"transform length is invalid",
	"a required pointer argument is null",
	"buffer length does not match the plan's length",
	"memory allocation failed during plan construction",
	"handle is null, stale, or was not issued by this library",
	"direction or data type value is out of range",
	"internal fault caught at the library boundary",
};

static const char *fourier_status_message_at(int32_t status) {
	if (status < 0 || status > 7) {
		return "unknown status code";
	}
	return fourier_status_messages[status];
}
*/
import "C"

import (
	"unsafe"

	"github.com/cwbudde/fourier/internal/capi"
)

// guard converts a panic in a wrapper body into the internal status.
func guard(st *C.int32_t) {
	if r := recover(); r != nil {
		*st = C.int32_t(capi.StatusInternal)
	}
}

//export fourier_create_plan
func fourier_create_plan(length C.uint64_t, direction C.int32_t, dtype C.int32_t, outHandle *C.uint64_t) (st C.int32_t) {
	defer guard(&st)

	if outHandle == nil {
		return C.int32_t(capi.StatusNullPointer)
	}

	*outHandle = 0

	// A length beyond the int range can never be planned; report it as
	// invalid before the conversion could wrap.
	if uint64(length) > uint64(int(^uint(0)>>1)) {
		return C.int32_t(capi.StatusInvalidLength)
	}

	h, status := capi.CreatePlan(int(length), capi.Direction(direction), capi.DataType(dtype))
	if status != capi.StatusOK {
		return C.int32_t(status)
	}

	*outHandle = C.uint64_t(h)

	return C.int32_t(capi.StatusOK)
}

//export fourier_execute
func fourier_execute(handle C.uint64_t, input unsafe.Pointer, inputLen C.uint64_t, output unsafe.Pointer, outputLen C.uint64_t) (st C.int32_t) {
	defer guard(&st)

	return C.int32_t(capi.ExecuteBuffers(capi.Handle(handle), input, output, uint64(inputLen), uint64(outputLen)))
}

//export fourier_destroy_plan
func fourier_destroy_plan(handle C.uint64_t) (st C.int32_t) {
	defer guard(&st)

	return C.int32_t(capi.DestroyPlan(capi.Handle(handle)))
}

//export fourier_plan_length
func fourier_plan_length(handle C.uint64_t, outLength *C.uint64_t) (st C.int32_t) {
	defer guard(&st)

	if outLength == nil {
		return C.int32_t(capi.StatusNullPointer)
	}

	n, _, _, status := capi.PlanInfo(capi.Handle(handle))
	if status != capi.StatusOK {
		*outLength = 0
		return C.int32_t(status)
	}

	*outLength = C.uint64_t(n)

	return C.int32_t(capi.StatusOK)
}

//export fourier_status_string
func fourier_status_string(status C.int32_t) *C.char {
	return C.fourier_status_message_at(status)
}

func main() {}
