// Package geom provides axis-aligned rectangles and sizes built on vec.Vec2.
//
// Rect follows the conventions of image.Rectangle: Min is inclusive, Max is
// exclusive, and a rectangle with Min.X >= Max.X or Min.Y >= Max.Y is empty.
// Unlike image.Rectangle it works for any numeric scalar, so the same code
// lays out pixel grids in int and UI boxes in float32.
package geom
