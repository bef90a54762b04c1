package simd

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-linalg/internal/cpu"
	"github.com/cwbudde/algo-linalg/simd/internal/arch/registry"
)

var (
	kernelOnce  sync.Once
	kernelTable registry.OpEntry
)

// kern returns the resolved kernel table, resolving it on first use.
func kern() *registry.OpEntry {
	kernelOnce.Do(initKernels)
	return &kernelTable
}

func initKernels() {
	entry, ok := registry.Global.Resolve(cpu.DetectFeatures())
	if !ok {
		panic("simd: no complete kernel table registered (missing generic fallback?)")
	}
	kernelTable = entry
}

// resetKernels forces the next operation to resolve the table again.
// Tests use it after cpu.SetForcedFeatures.
func resetKernels() {
	kernelOnce = sync.Once{}
	kernelTable = registry.OpEntry{}
}

// useKernels installs e as the resolved table. Tests only.
func useKernels(e registry.OpEntry) {
	kernelOnce.Do(func() {})
	kernelTable = e
}

// Backend returns the name of the kernel table in use, e.g. "sse2" or
// "generic".
func Backend() string {
	return kern().Name
}

// BackendInfo describes one registered kernel table.
type BackendInfo struct {
	Name     string
	Level    cpu.SIMDLevel
	Priority int
	// Kernels is the number of operations the table implements itself.
	Kernels int
	// Usable reports whether the running CPU supports the table.
	Usable bool
}

// Backends lists every registered kernel table, highest priority first.
func Backends() []BackendInfo {
	features := cpu.DetectFeatures()
	entries := registry.Global.ListEntries()

	infos := make([]BackendInfo, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		infos = append(infos, BackendInfo{
			Name:     e.Name,
			Level:    e.SIMDLevel,
			Priority: e.Priority,
			Kernels:  len(e.Kernels()),
			Usable:   cpu.Supports(features, e.SIMDLevel),
		})
	}
	slices.SortStableFunc(infos, func(a, b BackendInfo) int {
		return b.Priority - a.Priority
	})
	return infos
}
