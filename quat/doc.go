// Package quat provides unit quaternions for 3D rotations.
//
// A Quat[T] is stored as [4]T in (x, y, z, w) order, with w the scalar part,
// so a []Quat[float32] matches the float4 layout used by most GPU APIs.
// Products compose right to left: q.Mul(r).Rotate(v) rotates v by r first.
package quat
