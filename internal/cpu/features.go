// Package cpu reports the processor features the planner cares about.
package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasAVX2      bool
	HasAVX512    bool
	HasSSE2      bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current
// process. The result is cheap to compute; callers may cache it.
func DetectFeatures() Features {
	return Features{
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasSSE2:      cpu.X86.HasSSE2,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// WideVectors reports whether the processor has vector units wide
// enough that fused radix-4 stages beat plain radix-2 passes.
func (f Features) WideVectors() bool {
	return f.HasAVX2 || f.HasAVX512 || f.HasNEON
}
