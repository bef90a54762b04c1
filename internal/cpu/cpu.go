// Package cpu reports which SIMD instruction sets the simd kernels may use.
//
// The host is queried once, on the first DetectFeatures call. Setting the
// LINALG_NO_SIMD environment variable to a true value before that call
// restricts the whole process to the generic kernels. Tests replace the
// detected features with SetForcedFeatures.
package cpu

import (
	"os"
	"strconv"
	"sync"
)

// NoSIMDEnv is the environment variable that forces the generic kernels.
const NoSIMDEnv = "LINALG_NO_SIMD"

// SIMDLevel names the instruction set a kernel table requires.
// Levels of different architectures are not ordered against each other.
type SIMDLevel int

const (
	SIMDNone   SIMDLevel = iota // portable Go
	SIMDSSE2                    // amd64 baseline
	SIMDAVX                     // amd64
	SIMDAVX2                    // amd64
	SIMDAVX512                  // amd64, AVX-512F
	SIMDNEON                    // arm64 Advanced SIMD
)

var levelNames = [...]string{
	SIMDNone:   "None",
	SIMDSSE2:   "SSE2",
	SIMDAVX:    "AVX",
	SIMDAVX2:   "AVX2",
	SIMDAVX512: "AVX-512",
	SIMDNEON:   "NEON",
}

func (s SIMDLevel) String() string {
	if s < 0 || int(s) >= len(levelNames) {
		return "Unknown"
	}
	return levelNames[s]
}

// Features is a snapshot of the host capabilities that matter for kernel
// selection.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	// ForceGeneric limits selection to SIMDNone regardless of the flags above.
	ForceGeneric bool

	// Architecture is runtime.GOARCH of the detected host.
	Architecture string
}

// Supports reports whether a kernel table requiring level may run on a host
// with the given features.
func Supports(features Features, level SIMDLevel) bool {
	if level == SIMDNone {
		return true
	}
	if features.ForceGeneric {
		return false
	}
	switch level {
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	}
	return false
}

// Level returns the most capable SIMD level usable with f.
func (f Features) Level() SIMDLevel {
	for _, l := range [...]SIMDLevel{SIMDAVX512, SIMDAVX2, SIMDAVX, SIMDSSE2, SIMDNEON} {
		if Supports(f, l) {
			return l
		}
	}
	return SIMDNone
}

type detector struct {
	mu       sync.Mutex
	once     sync.Once
	detected Features
	forced   *Features
}

var host detector

// DetectFeatures returns the forced features if set, otherwise the cached
// result of querying the host. It is safe for concurrent use.
func DetectFeatures() Features {
	host.mu.Lock()
	defer host.mu.Unlock()

	if host.forced != nil {
		return *host.forced
	}
	host.once.Do(func() {
		host.detected = hostFeatures()
		host.detected.ForceGeneric = noSIMDFromEnv()
	})
	return host.detected
}

// SetForcedFeatures makes DetectFeatures return f until ResetDetection.
// It exists for tests.
func SetForcedFeatures(f Features) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.forced = &f
}

// ResetDetection drops forced features and the cached result, so the next
// DetectFeatures call queries the host and reads LINALG_NO_SIMD again.
func ResetDetection() {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.forced = nil
	host.once = sync.Once{}
	host.detected = Features{}
}

// noSIMDFromEnv reports whether LINALG_NO_SIMD asks for the generic kernels.
// Values that do not parse as a bool still count as set.
func noSIMDFromEnv() bool {
	val := os.Getenv(NoSIMDEnv)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
