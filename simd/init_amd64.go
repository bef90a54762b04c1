//go:build amd64 && !purego

package simd

// This file imports the amd64 kernel packages to trigger their init()
// functions, which register them with the global registry.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-linalg/simd/internal/arch/generic"

	// AMD64 implementations
	_ "github.com/cwbudde/algo-linalg/simd/internal/arch/amd64/sse2"
)
