//go:build !amd64 || purego

package simd

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-linalg/simd/internal/arch/generic"
)
