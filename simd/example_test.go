package simd_test

import (
	"fmt"

	"github.com/cwbudde/algo-linalg/simd"
)

func ExampleFloat32x4() {
	a := simd.Float32x4{1, 2, 3, 4}
	b := simd.SplatFloat32x4(2.5)

	fmt.Println(a.Add(b))
	fmt.Println(a.Less(b).Bits())
	fmt.Println(a.Max(b).ReduceSum())
	// Output:
	// [3.5 4.5 5.5 6.5]
	// 3
	// 12
}

func ExampleSelect() {
	a := simd.Float32x4{1, -2, 3, -4}
	zero := simd.Float32x4{}

	// Clamp negative lanes to zero.
	fmt.Println(simd.Select(a.Less(zero), zero, a))
	// Output:
	// [1 0 3 0]
}

func ExampleFloat32x4_ToInt32x4() {
	v := simd.Float32x4{1.9, -1.9, 2.5, 1e10}
	fmt.Println(v.ToInt32x4())
	// Output:
	// [1 -1 2 -2147483648]
}

func ExampleBoolOf() {
	t := simd.BoolOf[simd.Bool16](true)
	fmt.Printf("%#x %v\n", uint16(t), t.Bool())
	// Output:
	// 0xffff true
}
