// Package cpu detects the processor capabilities that steer automatic
// strategy selection.
package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to mover selection. Wide
// vector units make the bulk row copies of the whole-buffer and row movers
// cheap; without them the tiled mover with a smaller tile tends to win on
// large buffers.
type Features struct {
	HasAVX2      bool
	HasAVX512    bool
	HasSSE2      bool
	HasNEON      bool
	ForceGeneric bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasSSE2:      cpu.X86.HasSSE2,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// HasWideVectors reports whether bulk row copies can use at least 256-bit
// vector moves.
func (f Features) HasWideVectors() bool {
	if f.ForceGeneric {
		return false
	}

	return f.HasAVX2 || f.HasAVX512 || f.HasNEON
}
