//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// hostFeatures reads CPUID through x/sys/cpu. AVX-512 counts only with the
// foundation subset, which is what a 512-bit float kernel needs.
func hostFeatures() Features {
	x := cpu.X86
	return Features{
		HasSSE2:      x.HasSSE2,
		HasAVX:       x.HasAVX,
		HasAVX2:      x.HasAVX2,
		HasAVX512:    x.HasAVX512F,
		Architecture: runtime.GOARCH,
	}
}
