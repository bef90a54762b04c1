package vec

// Perp returns v rotated a quarter turn counter-clockwise: (-y, x).
func (v Vec2[T]) Perp() Vec2[T] { return Vec2[T]{-v[1], v[0]} }

// Cross returns the z component of the 3D cross product of v and w, which
// is positive when w lies counter-clockwise of v.
func (v Vec2[T]) Cross(w Vec2[T]) T { return v[0]*w[1] - v[1]*w[0] }

func (v Vec2[T]) YX() Vec2[T] { return Vec2[T]{v[1], v[0]} }

// Extend appends a z component.
func (v Vec2[T]) Extend(z T) Vec3[T] { return Vec3[T]{v[0], v[1], z} }

// Cross returns the right-handed cross product v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }
func (v Vec3[T]) XZ() Vec2[T] { return Vec2[T]{v[0], v[2]} }
func (v Vec3[T]) YZ() Vec2[T] { return Vec2[T]{v[1], v[2]} }

// Extend appends a w component.
func (v Vec3[T]) Extend(w T) Vec4[T] { return Vec4[T]{v[0], v[1], v[2], w} }

func (v Vec4[T]) XY() Vec2[T]  { return Vec2[T]{v[0], v[1]} }
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]} }

// Homogenize divides x, y and z by w. A zero w leaves the components as
// they are.
func (v Vec4[T]) Homogenize() Vec3[T] {
	if v[3] == 0 {
		return v.XYZ()
	}
	return Vec3[T]{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
}
