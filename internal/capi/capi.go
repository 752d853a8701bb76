package capi

import (
	"sync"

	"github.com/cwbudde/fourier"
)

// Direction selects the transform a plan is bound to. A boundary plan
// executes only the direction it was created with.
type Direction int32

const (
	DirectionForward Direction = 0
	DirectionInverse Direction = 1
)

// DataType selects the sample precision of a boundary plan.
type DataType int32

const (
	TypeComplex64  DataType = 0
	TypeComplex128 DataType = 1
)

// Handle is the opaque token foreign callers hold for a plan. Zero is
// never issued and always invalid. Handles are registry keys, not
// addresses: a stale or foreign value fails lookup and is reported as
// StatusInvalidHandle instead of being dereferenced.
type Handle uint64

// boundPlan pairs a Go plan with the (length, direction, type) triple
// it was created for. Exactly one of p64/p128 is set.
type boundPlan struct {
	n         int
	direction Direction
	dtype     DataType
	p64       *fourier.Plan[complex64]
	p128      *fourier.Plan[complex128]
}

// registry maps live handles to plans. The lock covers only handle
// bookkeeping; transform execution runs outside it, matching the
// one-plan-per-concurrent-caller contract.
var registry = struct {
	mu    sync.RWMutex
	next  Handle
	plans map[Handle]*boundPlan
}{
	next:  1,
	plans: make(map[Handle]*boundPlan),
}

// CreatePlan builds a plan for the given length, direction, and sample
// type and registers it. On any failure the returned handle is zero
// and nothing is registered.
func CreatePlan(length int, direction Direction, dtype DataType) (h Handle, st Status) {
	defer guard(&st)

	if length < 1 {
		return 0, StatusInvalidLength
	}

	if direction != DirectionForward && direction != DirectionInverse {
		return 0, StatusInvalidArgument
	}

	bp := &boundPlan{n: length, direction: direction, dtype: dtype}

	switch dtype {
	case TypeComplex64:
		p, err := fourier.NewPlanT[complex64](length)
		if err != nil {
			return 0, statusFromError(err)
		}
		bp.p64 = p
	case TypeComplex128:
		p, err := fourier.NewPlanT[complex128](length)
		if err != nil {
			return 0, statusFromError(err)
		}
		bp.p128 = p
	default:
		return 0, StatusInvalidArgument
	}

	registry.mu.Lock()
	h = registry.next
	registry.next++
	registry.plans[h] = bp
	registry.mu.Unlock()

	return h, StatusOK
}

// lookup fetches the plan for a handle.
func lookup(h Handle) (*boundPlan, Status) {
	if h == 0 {
		return nil, StatusInvalidHandle
	}

	registry.mu.RLock()
	bp, ok := registry.plans[h]
	registry.mu.RUnlock()

	if !ok {
		return nil, StatusInvalidHandle
	}

	return bp, StatusOK
}

// PlanInfo reports the (length, direction, type) triple bound to a
// handle. The export layer uses it to view raw pointers with the right
// element type.
func PlanInfo(h Handle) (length int, direction Direction, dtype DataType, st Status) {
	defer guard(&st)

	bp, st := lookup(h)
	if st != StatusOK {
		return 0, 0, 0, st
	}

	return bp.n, bp.direction, bp.dtype, StatusOK
}

// Execute64 runs the bound transform of a complex64 plan. Both slice
// lengths must equal the plan's length; nothing is written otherwise.
func Execute64(h Handle, dst, src []complex64) (st Status) {
	defer guard(&st)

	bp, st := lookup(h)
	if st != StatusOK {
		return st
	}

	if bp.p64 == nil {
		return StatusInvalidArgument
	}

	if len(dst) != bp.n || len(src) != bp.n {
		return StatusLengthMismatch
	}

	return statusFromError(bp.p64.Transform(dst, src, bp.direction == DirectionInverse))
}

// Execute128 runs the bound transform of a complex128 plan, with the
// same validation as Execute64.
func Execute128(h Handle, dst, src []complex128) (st Status) {
	defer guard(&st)

	bp, st := lookup(h)
	if st != StatusOK {
		return st
	}

	if bp.p128 == nil {
		return StatusInvalidArgument
	}

	if len(dst) != bp.n || len(src) != bp.n {
		return StatusLengthMismatch
	}

	return statusFromError(bp.p128.Transform(dst, src, bp.direction == DirectionInverse))
}

// DestroyPlan unregisters a handle. The plan's memory is reclaimed
// once no execution still references it. Destroying an unknown or
// already-destroyed handle reports StatusInvalidHandle and touches
// nothing.
func DestroyPlan(h Handle) (st Status) {
	defer guard(&st)

	if h == 0 {
		return StatusInvalidHandle
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, ok := registry.plans[h]; !ok {
		return StatusInvalidHandle
	}

	delete(registry.plans, h)

	return StatusOK
}

// LiveHandles reports the number of registered plans. Test hook.
func LiveHandles() int {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	return len(registry.plans)
}
