package geom_test

import (
	"fmt"

	"github.com/cwbudde/algo-linalg/geom"
	"github.com/cwbudde/algo-linalg/vec"
)

func ExampleGrid() {
	for cell := range geom.Grid(geom.Rt(0, 0, 10, 4), 2, 2) {
		fmt.Println(cell)
	}
	// Output:
	// (0, 0)-(5, 2)
	// (5, 0)-(10, 2)
	// (0, 2)-(5, 4)
	// (5, 2)-(10, 4)
}

func ExampleAlign() {
	screen := geom.Rt(0, 0, 640, 480)
	dialog := geom.FromPosSize(vec.V2(0, 0), geom.Sz(200, 100))
	fmt.Println(geom.Align(screen, dialog, geom.EdgeBottom))
	// Output: (220, 380)-(420, 480)
}

func ExampleSize_FitInside() {
	video := geom.Sz(1600.0, 900.0)
	fmt.Println(video.FitInside(geom.Sz(800.0, 800.0)))
	// Output: 800x450
}
