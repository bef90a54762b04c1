package pose

import (
	"fmt"

	"github.com/cwbudde/algo-linalg/mat"
	"github.com/cwbudde/algo-linalg/num"
	"github.com/cwbudde/algo-linalg/quat"
	"github.com/cwbudde/algo-linalg/vec"
)

// Pose3 is a 3D rigid transform that rotates by Rot and then translates by
// Pos. Rot is expected to be unit length.
type Pose3[T num.Float] struct {
	Pos vec.Vec3[T]
	Rot quat.Quat[T]
}

// New3 returns the pose at pos with orientation rot.
func New3[T num.Float](pos vec.Vec3[T], rot quat.Quat[T]) Pose3[T] {
	return Pose3[T]{Pos: pos, Rot: rot}
}

// Identity3 returns the pose that leaves every point unchanged.
func Identity3[T num.Float]() Pose3[T] {
	return Pose3[T]{Rot: quat.Identity[T]()}
}

// TransformPoint maps v from the local frame of p into the parent frame.
func (p Pose3[T]) TransformPoint(v vec.Vec3[T]) vec.Vec3[T] {
	return p.Rot.Rotate(v).Add(p.Pos)
}

// TransformDir rotates the direction v, ignoring the translation.
func (p Pose3[T]) TransformDir(v vec.Vec3[T]) vec.Vec3[T] {
	return p.Rot.Rotate(v)
}

// Mul returns the composition that applies q and then p. The rotation is
// renormalized to keep long chains from drifting.
func (p Pose3[T]) Mul(q Pose3[T]) Pose3[T] {
	return Pose3[T]{
		Pos: p.TransformPoint(q.Pos),
		Rot: p.Rot.Mul(q.Rot).Normalize(),
	}
}

// Inverse returns the pose that undoes p.
func (p Pose3[T]) Inverse() Pose3[T] {
	r := p.Rot.Inverse()
	return Pose3[T]{Pos: r.Rotate(p.Pos).Neg(), Rot: r}
}

// Interpolate blends position linearly and orientation with Slerp.
func (p Pose3[T]) Interpolate(q Pose3[T], t T) Pose3[T] {
	return Pose3[T]{
		Pos: p.Pos.Lerp(q.Pos, t),
		Rot: p.Rot.Slerp(q.Rot, t),
	}
}

// Mat4 returns p as a 3D homogeneous matrix.
func (p Pose3[T]) Mat4() mat.Mat4[T] {
	return mat.Affine(mat.FromQuat(p.Rot), p.Pos)
}

// NearlyEqual reports whether positions and rotations agree within eps per
// component. Rot and -Rot are the same orientation.
func (p Pose3[T]) NearlyEqual(q Pose3[T], eps float64) bool {
	return p.NearlyEqualTol(q, num.Eps(eps))
}

// NearlyEqualTol is NearlyEqual with an explicit tolerance.
func (p Pose3[T]) NearlyEqualTol(q Pose3[T], tol num.Tolerance) bool {
	return p.Pos.NearlyEqualTol(q.Pos, tol) && p.Rot.NearlyEqualTol(q.Rot, tol)
}

func (p Pose3[T]) String() string {
	return fmt.Sprintf("{%v %v}", p.Pos, p.Rot)
}
