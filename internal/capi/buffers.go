package capi

import "unsafe"

// ExecuteBuffers runs the bound transform of a handle on raw caller
// memory. Lengths arrive as the caller's unsigned 64-bit values and
// are compared against the plan length before any slice is formed, so
// a degenerate length (larger than the address space, or past the int
// range) fails as a mismatch instead of faulting in slice
// construction. Nothing is written on a non-OK status.
func ExecuteBuffers(h Handle, input, output unsafe.Pointer, inputLen, outputLen uint64) (st Status) {
	defer guard(&st)

	if input == nil || output == nil {
		return StatusNullPointer
	}

	bp, st := lookup(h)
	if st != StatusOK {
		return st
	}

	if inputLen != uint64(bp.n) || outputLen != uint64(bp.n) {
		return StatusLengthMismatch
	}

	switch bp.dtype {
	case TypeComplex64:
		src := unsafe.Slice((*complex64)(input), bp.n)
		dst := unsafe.Slice((*complex64)(output), bp.n)

		return statusFromError(bp.p64.Transform(dst, src, bp.direction == DirectionInverse))
	case TypeComplex128:
		src := unsafe.Slice((*complex128)(input), bp.n)
		dst := unsafe.Slice((*complex128)(output), bp.n)

		return statusFromError(bp.p128.Transform(dst, src, bp.direction == DirectionInverse))
	default:
		return StatusInvalidArgument
	}
}
