package pose

import (
	"fmt"

	"github.com/cwbudde/algo-linalg/mat"
	"github.com/cwbudde/algo-linalg/num"
	"github.com/cwbudde/algo-linalg/vec"
)

// Pose2 is a 2D rigid transform that rotates counter-clockwise by Angle
// radians and then translates by Pos.
type Pose2[T num.Float] struct {
	Pos   vec.Vec2[T]
	Angle T
}

// New2 returns the pose at pos facing angle.
func New2[T num.Float](pos vec.Vec2[T], angle T) Pose2[T] {
	return Pose2[T]{Pos: pos, Angle: angle}
}

// Identity2 returns the pose that leaves every point unchanged.
func Identity2[T num.Float]() Pose2[T] {
	return Pose2[T]{}
}

func (p Pose2[T]) rotate(v vec.Vec2[T]) vec.Vec2[T] {
	s, c := num.SinCos(p.Angle)
	return vec.Vec2[T]{c*v[0] - s*v[1], s*v[0] + c*v[1]}
}

// TransformPoint maps v from the local frame of p into the parent frame.
func (p Pose2[T]) TransformPoint(v vec.Vec2[T]) vec.Vec2[T] {
	return p.rotate(v).Add(p.Pos)
}

// TransformDir rotates the direction v, ignoring the translation.
func (p Pose2[T]) TransformDir(v vec.Vec2[T]) vec.Vec2[T] {
	return p.rotate(v)
}

// Mul returns the composition that applies q and then p. The angle is
// wrapped into (-Pi, Pi].
func (p Pose2[T]) Mul(q Pose2[T]) Pose2[T] {
	return Pose2[T]{
		Pos:   p.TransformPoint(q.Pos),
		Angle: num.WrapAngle(p.Angle + q.Angle),
	}
}

// Inverse returns the pose that undoes p.
func (p Pose2[T]) Inverse() Pose2[T] {
	inv := Pose2[T]{Angle: num.WrapAngle(-p.Angle)}
	inv.Pos = inv.rotate(p.Pos).Neg()
	return inv
}

// Lerp interpolates position linearly and angle along the shorter arc.
func (p Pose2[T]) Lerp(q Pose2[T], t T) Pose2[T] {
	d := num.WrapAngle(q.Angle - p.Angle)
	return Pose2[T]{
		Pos:   p.Pos.Lerp(q.Pos, t),
		Angle: num.WrapAngle(p.Angle + d*t),
	}
}

// Mat3 returns p as a 2D homogeneous matrix.
func (p Pose2[T]) Mat3() mat.Mat3[T] {
	r := mat.Rotate2(p.Angle)
	return mat.Mat3[T]{r[0].Extend(0), r[1].Extend(0), p.Pos.Extend(1)}
}

// NearlyEqual reports whether the positions agree within eps per component
// and the angles within eps modulo a full turn.
func (p Pose2[T]) NearlyEqual(q Pose2[T], eps float64) bool {
	return p.NearlyEqualTol(q, num.Eps(eps))
}

// NearlyEqualTol is NearlyEqual with an explicit tolerance. Only its
// absolute bound applies to the angle difference.
func (p Pose2[T]) NearlyEqualTol(q Pose2[T], tol num.Tolerance) bool {
	return p.Pos.NearlyEqualTol(q.Pos, tol) &&
		tol.Equal(float64(num.WrapAngle(p.Angle-q.Angle)), 0)
}

func (p Pose2[T]) String() string {
	return fmt.Sprintf("{%v %v}", p.Pos, p.Angle)
}
