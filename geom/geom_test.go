package geom

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-linalg/vec"
)

func TestSize(t *testing.T) {
	s := Sz(4, 3)

	assert.Equal(t, 12, s.Area())
	assert.False(t, s.Empty())
	assert.True(t, Sz(0, 3).Empty())
	assert.True(t, Sz(2, -1).Empty())
	assert.Equal(t, Sz(8, 6), s.Scale(2))
	assert.Equal(t, Sz(5, 5), s.Add(Sz(1, 2)))
	assert.Equal(t, Sz(3, 1), s.Sub(Sz(1, 2)))
	assert.Equal(t, Sz(2, 3), s.Min(Sz(2, 7)))
	assert.Equal(t, Sz(4, 7), s.Max(Sz(2, 7)))
	assert.Equal(t, vec.V2(4, 3), s.Vec())
	assert.Equal(t, s, SizeOf(vec.V2(4, 3)))
	assert.True(t, s.Contains(Sz(4, 2)))
	assert.False(t, s.Contains(Sz(5, 1)))
	assert.InDelta(t, 4.0/3.0, s.Aspect(), 1e-15)
	assert.Zero(t, Sz(1, 0).Aspect())
	assert.Equal(t, "4x3", s.String())
}

func TestFitInside(t *testing.T) {
	tests := []struct {
		name   string
		s, in  Size[float64]
		expect Size[float64]
	}{
		{"wide into square", Sz(16.0, 9), Sz(100.0, 100), Sz(100.0, 56.25)},
		{"tall into wide", Sz(1.0, 2), Sz(300.0, 100), Sz(50.0, 100)},
		{"grow", Sz(2.0, 1), Sz(10.0, 10), Sz(10.0, 5)},
		{"empty", Sz(0.0, 1), Sz(10.0, 10), Sz(0.0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.s.FitInside(tt.in))
		})
	}

	assert.Equal(t, Sz(100, 56), Sz(16, 9).FitInside(Sz(100, 100)), "integer sizes truncate")
}

func TestRectBasics(t *testing.T) {
	r := Rt(10, 20, 0, 0)

	assert.Equal(t, vec.V2(0, 0), r.Min, "Rt canonicalizes")
	assert.Equal(t, vec.V2(10, 20), r.Max)
	assert.Equal(t, 10, r.Dx())
	assert.Equal(t, 20, r.Dy())
	assert.Equal(t, Sz(10, 20), r.Size())
	assert.Equal(t, 200, r.Area())
	assert.Equal(t, vec.V2(5, 10), r.Center())
	assert.Equal(t, "(0, 0)-(10, 20)", r.String())

	assert.True(t, Rect[int]{Min: vec.V2(3, 0), Max: vec.V2(1, 5)}.Empty())
	assert.Equal(t, Rt(1, 0, 3, 5), Rect[int]{Min: vec.V2(3, 0), Max: vec.V2(1, 5)}.Canon())

	assert.Equal(t, Rt(2, 3, 6, 8), FromPosSize(vec.V2(2, 3), Sz(4, 5)))
	assert.Equal(t, Rt(-1.0, -2, 1, 2), FromCenter(vec.V2(0.0, 0), Sz(2.0, 4)))
	assert.Equal(t, Rt(5, 5, 7, 7), Rt(0, 0, 2, 2).CenterAt(vec.V2(6, 6)))
	assert.Equal(t, Rt(0, 0, 3, 1), Rt(0, 0, 10, 10).Resize(Sz(3, 1)))
	assert.Equal(t, Rt(1, 2, 3, 4), Rt(0, 0, 2, 2).Add(vec.V2(1, 2)))
	assert.Equal(t, Rt(-1, -2, 1, 0), Rt(0, 0, 2, 2).Sub(vec.V2(1, 2)))
}

func TestContains(t *testing.T) {
	r := Rt(0, 0, 10, 10)

	assert.True(t, r.Contains(vec.V2(0, 0)))
	assert.True(t, r.Contains(vec.V2(9, 9)))
	assert.False(t, r.Contains(vec.V2(10, 5)), "Max is exclusive")
	assert.False(t, r.Contains(vec.V2(-1, 5)))

	assert.True(t, r.ContainsRect(Rt(2, 2, 10, 10)))
	assert.False(t, r.ContainsRect(Rt(2, 2, 11, 10)))
	assert.True(t, r.ContainsRect(Rt(50, 50, 50, 60)), "empty rect is contained anywhere")
}

func TestIntersectUnion(t *testing.T) {
	a := Rt(0, 0, 10, 10)
	b := Rt(5, 5, 15, 20)
	c := Rt(20, 20, 30, 30)

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
	assert.False(t, a.Overlaps(Rt(10, 0, 20, 10)), "touching edges do not overlap")

	assert.Equal(t, Rt(5, 5, 10, 10), a.Intersect(b))
	assert.Equal(t, Rect[int]{}, a.Intersect(c))

	assert.Equal(t, Rt(0, 0, 15, 20), a.Union(b))
	assert.Equal(t, a, a.Union(Rect[int]{}))
	assert.Equal(t, a, Rect[int]{}.Union(a))
}

func TestInset(t *testing.T) {
	r := Rt(0, 0, 10, 4)

	assert.Equal(t, Rt(1, 1, 9, 3), r.Inset(1))
	assert.Equal(t, Rt(-2, -2, 12, 6), r.Inset(-2))

	got := r.Inset(3)
	assert.Equal(t, Rect[int]{Min: vec.V2(3, 2), Max: vec.V2(7, 2)}, got, "y collapses to its center")
	assert.True(t, got.Empty())
}

func TestCornersClampLerp(t *testing.T) {
	r := Rt(1, 2, 5, 7)

	assert.Equal(t, [4]vec.Vec2[int]{{1, 2}, {5, 2}, {5, 7}, {1, 7}}, r.Corners())
	assert.Equal(t, vec.V2(5, 2), r.Clamp(vec.V2(9, -3)))
	assert.Equal(t, vec.V2(3, 4), r.Clamp(vec.V2(3, 4)))

	a := Rt(0.0, 0, 10, 10)
	b := Rt(10.0, 20, 30, 40)
	assert.Equal(t, Rt(5.0, 10, 20, 25), a.Lerp(b, 0.5))
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
}

func TestEq(t *testing.T) {
	assert.True(t, Rt(0, 0, 1, 1).Eq(Rt(0, 0, 1, 1)))
	assert.False(t, Rt(0, 0, 1, 1).Eq(Rt(0, 0, 1, 2)))
	assert.True(t, Rt(5, 5, 5, 9).Eq(Rt(0, 0, 0, 0)), "empty rectangles are equal")
}

func TestAlign(t *testing.T) {
	outer := Rt(0, 0, 100, 100)
	inner := Rt(0, 0, 20, 10)

	tests := []struct {
		name  string
		edges Edges
		want  Rect[int]
	}{
		{"none centers", EdgeNone, Rt(40, 45, 60, 55)},
		{"top", EdgeTop, Rt(40, 0, 60, 10)},
		{"bottom right", EdgeBottom | EdgeRight, Rt(80, 90, 100, 100)},
		{"left", EdgeLeft, Rt(0, 45, 20, 55)},
		{"top bottom stretches", EdgeTop | EdgeBottom, Rt(40, 0, 60, 100)},
		{"all", EdgeAll, outer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Align(outer, inner, tt.edges))
		})
	}
}

func TestSplit(t *testing.T) {
	r := Rt(0, 0, 10, 6)

	left, right := SplitH(r, 4)
	assert.Equal(t, Rt(0, 0, 4, 6), left)
	assert.Equal(t, Rt(4, 0, 10, 6), right)

	top, bottom := SplitV(r, 2)
	assert.Equal(t, Rt(0, 0, 10, 2), top)
	assert.Equal(t, Rt(0, 2, 10, 6), bottom)
}

func TestGrid(t *testing.T) {
	r := Rt(0, 0, 10, 4)
	cells := slices.Collect(Grid(r, 3, 2))
	require.Len(t, cells, 6)

	assert.Equal(t, Rt(0, 0, 3, 2), cells[0])
	assert.Equal(t, Rt(3, 0, 6, 2), cells[1])
	assert.Equal(t, Rt(6, 0, 10, 2), cells[2], "last column absorbs the remainder")
	assert.Equal(t, Rt(0, 2, 3, 4), cells[3])

	var area int
	for _, c := range cells {
		area += c.Area()
	}
	assert.Equal(t, r.Area(), area, "cells cover r without gaps")

	assert.Empty(t, slices.Collect(Grid(r, 0, 2)))

	for c := range Grid(r, 3, 2) {
		assert.Equal(t, Rt(0, 0, 3, 2), c)
		break
	}
}

func TestTileGrid(t *testing.T) {
	tiles := make([]Rect[float64], 5)
	TileGrid(tiles, Rt(0.0, 0, 30, 20), 3)

	assert.Equal(t, []Rect[float64]{
		Rt(0.0, 0, 10, 10),
		Rt(10.0, 0, 20, 10),
		Rt(20.0, 0, 30, 10),
		Rt(0.0, 10, 10, 20),
		Rt(10.0, 10, 20, 20),
	}, tiles)

	untouched := []Rect[float64]{Rt(1.0, 1, 2, 2)}
	TileGrid(untouched, Rt(0.0, 0, 30, 20), 0)
	assert.Equal(t, Rt(1.0, 1, 2, 2), untouched[0])
}
