// Package num provides the scalar constraints and elementwise scalar math
// shared by every aggregate in algo-linalg.
//
// The functions here are the scalar half of the elementwise math surface: each
// one has a lanewise counterpart in package elem that applies it across SIMD
// packs, vectors and quaternions.
package num
