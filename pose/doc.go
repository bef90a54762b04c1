// Package pose provides rigid transforms: a position plus an orientation.
//
// Pose2 rotates by an angle and Pose3 by a unit quaternion, in both cases
// before translating. Compose poses with Mul, which applies the right-hand
// pose first, just like matrix products:
//
//	world := body.Mul(sensor) // sensor frame -> body frame -> world frame
//	p := world.TransformPoint(v)
package pose
