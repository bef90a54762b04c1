// Package simd provides small packed-lane value types and sized boolean masks.
//
// Packs are plain arrays: Float32x4 has exactly the size and alignment of
// [4]float32, so slices of packs can be reinterpreted as slices of scalars and
// back. The 16-byte packs and masks run through a kernel table resolved once at
// first use from the detected CPU features. A pure Go table is always
// registered; on amd64 an SSE2 table is preferred unless the purego build tag
// is set or LINALG_NO_SIMD is true in the environment.
//
// Every kernel table produces bit-identical results, NaN payloads and signed
// zeros included. In particular:
//
//   - Min(a, b) is a < b ? a : b per lane and Max(a, b) is a > b ? a : b,
//     so a NaN in either lane, or two zeros of either sign, yield b.
//   - Comparisons are IEEE ordered predicates, except Ne which is true
//     whenever either lane is NaN.
//   - Float to integer conversion truncates; NaN and out-of-range lanes
//     become math.MinInt32.
//   - Select combines its operands bit by bit, so masks that are not all
//     ones or all zeros per lane blend individual bits.
package simd
