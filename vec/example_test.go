package vec_test

import (
	"fmt"

	"github.com/cwbudde/algo-linalg/vec"
)

func ExampleVec3_Cross() {
	x := vec.V3(1.0, 0.0, 0.0)
	y := vec.V3(0.0, 1.0, 0.0)
	fmt.Println(x.Cross(y))
	// Output: (0, 0, 1)
}

func ExampleVec2_Normalize() {
	fmt.Println(vec.V2(3.0, 4.0).Normalize())
	fmt.Println(vec.Zero2[float64]().Normalize())
	// Output:
	// (0.6, 0.8)
	// (0, 0)
}
