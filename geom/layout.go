package geom

import (
	"iter"

	"deedles.dev/xiter"

	"github.com/cwbudde/algo-linalg/num"
	"github.com/cwbudde/algo-linalg/vec"
)

// SplitH splits r at distance w from its left edge into a left and a right
// part.
func SplitH[T num.Number](r Rect[T], w T) (left, right Rect[T]) {
	left = r.Resize(Sz(w, r.Dy()))
	right = r.Resize(Sz(r.Dx()-w, r.Dy())).Add(vec.Vec2[T]{w, 0})
	return left, right
}

// SplitV splits r at distance h from its top edge into a top and a bottom
// part.
func SplitV[T num.Number](r Rect[T], h T) (top, bottom Rect[T]) {
	top = r.Resize(Sz(r.Dx(), h))
	bottom = r.Resize(Sz(r.Dx(), r.Dy()-h)).Add(vec.Vec2[T]{0, h})
	return top, bottom
}

// Grid yields the cells of r divided into cols columns and rows rows, row
// by row from the top-left cell. Cell edges are computed from r directly,
// so the cells cover r without gaps even when the size does not divide
// evenly. Non-positive counts yield nothing.
func Grid[T num.Number](r Rect[T], cols, rows int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if cols <= 0 || rows <= 0 {
			return
		}
		x := func(i int) T { return r.Min[0] + r.Dx()*T(i)/T(cols) }
		y := func(j int) T { return r.Min[1] + r.Dy()*T(j)/T(rows) }

		for j := range rows {
			for i := range cols {
				cell := Rect[T]{
					Min: vec.Vec2[T]{x(i), y(j)},
					Max: vec.Vec2[T]{x(i + 1), y(j + 1)},
				}
				if !yield(cell) {
					return
				}
			}
		}
	}
}

// TileGrid fills tiles with the cells of r arranged in cols columns and as
// many rows as needed for len(tiles) cells. A non-positive cols leaves
// tiles untouched.
func TileGrid[T num.Number](tiles []Rect[T], r Rect[T], cols int) {
	if cols <= 0 || len(tiles) == 0 {
		return
	}
	rows := (len(tiles) + cols - 1) / cols
	insertTilesFromSeq(tiles, Grid(r, cols, rows))
}

func insertTilesFromSeq[T num.Number](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		if i >= len(tiles) {
			return
		}
		tiles[i] = t
	}
}
