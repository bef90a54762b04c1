package geom

import "github.com/cwbudde/algo-linalg/num"

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight

	EdgeAll = EdgeTop | EdgeBottom | EdgeLeft | EdgeRight
)

// Align centers inner on outer and then shifts the specified edges of inner
// to the corresponding edges of outer, stretching inner when opposite edges
// are both given.
func Align[T num.Number](outer, inner Rect[T], edges Edges) Rect[T] {
	inner = inner.CenterAt(outer.Center())
	switch {
	case edges&EdgeTop != 0:
		inner.Min[1], inner.Max[1] = outer.Min[1], outer.Min[1]+inner.Dy()
		if edges&EdgeBottom != 0 {
			inner.Max[1] = outer.Max[1]
		}
	case edges&EdgeBottom != 0:
		inner.Min[1], inner.Max[1] = outer.Max[1]-inner.Dy(), outer.Max[1]
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.Min[0], inner.Max[0] = outer.Min[0], outer.Min[0]+inner.Dx()
		if edges&EdgeRight != 0 {
			inner.Max[0] = outer.Max[0]
		}
	case edges&EdgeRight != 0:
		inner.Min[0], inner.Max[0] = outer.Max[0]-inner.Dx(), outer.Max[0]
	}
	return inner
}
