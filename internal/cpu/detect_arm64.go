//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// hostFeatures reports Advanced SIMD, which every ARMv8 core implements.
func hostFeatures() Features {
	return Features{HasNEON: cpu.ARM64.HasASIMD, Architecture: runtime.GOARCH}
}
