// Package vec provides fixed-size 2, 3 and 4 component vectors.
//
// Vectors are arrays, so they compare with == and copy by value, and a
// []Vec3[float32] can be handed to code expecting packed float32 triples.
// Component-wise comparisons return Bool2/3/4 and pair with Select, which
// lets vectors take part in the lanewise functions of package elem.
//
// Batch2 holds many 2D vectors as separate X and Y columns and runs its
// bulk operations on the block kernels of algo-vecmath.
package vec
