// Package mat provides 2x2, 3x3 and 4x4 matrices.
//
// Matrices are stored column-major as arrays of column vectors, so
// Mat4[float32] has the memory layout of [16]float32 expected by OpenGL and
// Vulkan, and m[c] is column c. Element access by row and column goes
// through At and Set.
//
// Projection builders follow OpenGL conventions: right-handed eye space
// looking down -Z and clip-space depth in [-1, 1].
package mat
