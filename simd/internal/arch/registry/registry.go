// Package registry provides the kernel registry behind the simd pack types.
//
// Multiple implementation variants (generic, SSE2, ...) register themselves via
// init() functions. The simd package resolves one kernel table at runtime from
// the detected CPU features: the highest-priority compatible entry wins, and
// any kernel it leaves nil is taken from the next compatible entry down, so a
// variant only has to provide the operations it actually accelerates.
//
// Kernels take and return raw arrays by value: the pack types convert to
// them for free, nothing escapes through the function values, and this
// package does not depend on the pack types. Every 16-byte pack and mask
// shares the 128-bit bitwise kernels.
package registry

import (
	"reflect"
	"sync"

	"github.com/cwbudde/algo-linalg/internal/cpu"
)

// OpEntry represents a registered implementation variant for the simd packs.
//
// Not all fields need to be populated - only implement the operations
// available at that SIMD level.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "sse2").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - AVX/NEON: 15
	//   - AVX2: 20
	Priority int

	// Float32x4 lanes.
	AddFloat32x4  func(a, b [4]float32) [4]float32
	SubFloat32x4  func(a, b [4]float32) [4]float32
	MulFloat32x4  func(a, b [4]float32) [4]float32
	DivFloat32x4  func(a, b [4]float32) [4]float32
	MinFloat32x4  func(a, b [4]float32) [4]float32
	MaxFloat32x4  func(a, b [4]float32) [4]float32
	SqrtFloat32x4 func(a [4]float32) [4]float32

	// EqFloat32x4 and friends return all-ones lanes where the predicate holds.
	EqFloat32x4     func(a, b [4]float32) [4]uint32
	NeFloat32x4     func(a, b [4]float32) [4]uint32
	LessFloat32x4   func(a, b [4]float32) [4]uint32
	LessEqFloat32x4 func(a, b [4]float32) [4]uint32

	// TruncFloat32x4 converts with truncation; NaN and out-of-range lanes
	// become math.MinInt32.
	TruncFloat32x4 func(a [4]float32) [4]int32

	// Float64x2 lanes.
	AddFloat64x2  func(a, b [2]float64) [2]float64
	SubFloat64x2  func(a, b [2]float64) [2]float64
	MulFloat64x2  func(a, b [2]float64) [2]float64
	DivFloat64x2  func(a, b [2]float64) [2]float64
	MinFloat64x2  func(a, b [2]float64) [2]float64
	MaxFloat64x2  func(a, b [2]float64) [2]float64
	SqrtFloat64x2 func(a [2]float64) [2]float64

	EqFloat64x2     func(a, b [2]float64) [2]uint64
	NeFloat64x2     func(a, b [2]float64) [2]uint64
	LessFloat64x2   func(a, b [2]float64) [2]uint64
	LessEqFloat64x2 func(a, b [2]float64) [2]uint64

	// Int32x4 lanes (wrapping arithmetic).
	AddInt32x4     func(a, b [4]int32) [4]int32
	SubInt32x4     func(a, b [4]int32) [4]int32
	EqInt32x4      func(a, b [4]int32) [4]uint32
	GreaterInt32x4 func(a, b [4]int32) [4]uint32

	// ConvertInt32x4 converts to float32 rounding to nearest even.
	ConvertInt32x4 func(a [4]int32) [4]float32

	// 128-bit bitwise operations shared by every 16-byte pack and mask.
	And128    func(a, b [4]uint32) [4]uint32
	Or128     func(a, b [4]uint32) [4]uint32
	Xor128    func(a, b [4]uint32) [4]uint32
	AndNot128 func(a, b [4]uint32) [4]uint32 // a &^ b
	Not128    func(a [4]uint32) [4]uint32

	// Select128 computes (mask & a) | (^mask & b) bit by bit.
	Select128 func(mask, a, b [4]uint32) [4]uint32
}

// Kernels returns the names of the kernels e provides, in declaration order.
func (e *OpEntry) Kernels() []string {
	v := reflect.ValueOf(e).Elem()
	t := v.Type()

	var names []string
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Type.Kind() != reflect.Func {
			continue
		}
		if !v.Field(i).IsNil() {
			names = append(names, t.Field(i).Name)
		}
	}
	return names
}

// Missing returns the names of the kernels e leaves nil.
func (e *OpEntry) Missing() []string {
	v := reflect.ValueOf(e).Elem()
	t := v.Type()

	var names []string
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Type.Kind() != reflect.Func {
			continue
		}
		if v.Field(i).IsNil() {
			names = append(names, t.Field(i).Name)
		}
	}
	return names
}

// fillFrom copies every kernel of src into the nil kernels of e.
func (e *OpEntry) fillFrom(src *OpEntry) {
	dv := reflect.ValueOf(e).Elem()
	sv := reflect.ValueOf(src).Elem()
	for i := 0; i < dv.NumField(); i++ {
		f := dv.Field(i)
		if f.Kind() == reflect.Func && f.IsNil() {
			f.Set(sv.Field(i))
		}
	}
}

// OpRegistry manages the registration and lookup of kernel variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the simd package.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// This function is typically called from init() functions in architecture-specific
// implementation packages. It is safe to call concurrently, but all registrations
// should complete before the first call to Resolve().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Resolve builds the kernel table for the given CPU features.
//
// The result starts as a copy of the highest-priority compatible entry;
// kernels it lacks are filled from lower-priority compatible entries. The returned entry keeps
// the name of the winning variant. ok is false if no entry is compatible
// or if some kernel is still missing afterwards.
func (r *OpRegistry) Resolve(features cpu.Features) (entry OpEntry, ok bool) {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	found := false
	for i := range r.entries {
		if !cpu.Supports(features, r.entries[i].SIMDLevel) {
			continue
		}
		if !found {
			entry = r.entries[i]
			found = true
			continue
		}
		entry.fillFrom(&r.entries[i])
	}

	return entry, found && len(entry.Missing()) == 0
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, ~2-4 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
