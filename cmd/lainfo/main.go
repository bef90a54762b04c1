// Command lainfo prints how algo-linalg runs on the current machine.
//
// Usage:
//
//	lainfo [flags]
//
// Without flags it prints the detected CPU features, the registered kernel
// tables and the memory layout of every value type.
//
// Examples:
//
//	lainfo
//	lainfo -backends
//	lainfo -generic -backends
//	lainfo -layout
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"
	"unsafe"

	"github.com/cwbudde/algo-linalg/geom"
	"github.com/cwbudde/algo-linalg/internal/cpu"
	"github.com/cwbudde/algo-linalg/mat"
	"github.com/cwbudde/algo-linalg/pose"
	"github.com/cwbudde/algo-linalg/quat"
	"github.com/cwbudde/algo-linalg/simd"
	"github.com/cwbudde/algo-linalg/vec"
)

func main() {
	generic := flag.Bool("generic", false, "force the generic kernels (same as "+cpu.NoSIMDEnv+"=1)")
	layout := flag.Bool("layout", false, "only print the value type layout table")
	backends := flag.Bool("backends", false, "only print CPU features and kernel tables")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lainfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints CPU features, SIMD kernel tables and value type layouts.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lainfo -backends\n")
		fmt.Fprintf(os.Stderr, "  lainfo -generic -backends\n")
		fmt.Fprintf(os.Stderr, "  lainfo -layout\n")
	}
	flag.Parse()

	if *generic {
		// Detection is lazy, so this takes effect before the first kernel
		// table is resolved.
		if err := os.Setenv(cpu.NoSIMDEnv, "1"); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	all := !*layout && !*backends
	var err error
	if all || *backends {
		err = printBackends(os.Stdout)
	}
	if err == nil && all {
		_, err = fmt.Fprintln(os.Stdout)
	}
	if err == nil && (all || *layout) {
		err = printLayout(os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func printBackends(w io.Writer) error {
	f := cpu.DetectFeatures()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Architecture\t%s\n", runtime.GOARCH)
	fmt.Fprintf(tw, "SSE2\t%v\n", f.HasSSE2)
	fmt.Fprintf(tw, "AVX\t%v\n", f.HasAVX)
	fmt.Fprintf(tw, "AVX2\t%v\n", f.HasAVX2)
	fmt.Fprintf(tw, "AVX-512\t%v\n", f.HasAVX512)
	fmt.Fprintf(tw, "NEON\t%v\n", f.HasNEON)
	fmt.Fprintf(tw, "Forced generic\t%v\n", f.ForceGeneric)
	fmt.Fprintf(tw, "Best level\t%s\n", f.Level())
	fmt.Fprintf(tw, "Backend in use\t%s\n", simd.Backend())
	if err := tw.Flush(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Table\tLevel\tPriority\tKernels\tUsable\n")
	fmt.Fprintf(tw, "-----\t-----\t--------\t-------\t------\n")
	for _, b := range simd.Backends() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%v\n", b.Name, b.Level, b.Priority, b.Kernels, b.Usable)
	}
	return tw.Flush()
}

type layoutRow struct {
	name       string
	size       uintptr
	align      uintptr
	arrayName  string
	arraySize  uintptr
	arrayAlign uintptr
}

// row describes T next to the plain array A it is meant to overlay.
func row[T, A any](name, arrayName string) layoutRow {
	var t T
	var a A
	return layoutRow{
		name:       name,
		size:       unsafe.Sizeof(t),
		align:      unsafe.Alignof(t),
		arrayName:  arrayName,
		arraySize:  unsafe.Sizeof(a),
		arrayAlign: unsafe.Alignof(a),
	}
}

func layoutRows() []layoutRow {
	return []layoutRow{
		row[simd.Float32x2, [2]float32]("simd.Float32x2", "[2]float32"),
		row[simd.Float32x4, [4]float32]("simd.Float32x4", "[4]float32"),
		row[simd.Float64x2, [2]float64]("simd.Float64x2", "[2]float64"),
		row[simd.Float64x4, [4]float64]("simd.Float64x4", "[4]float64"),
		row[simd.Int32x2, [2]int32]("simd.Int32x2", "[2]int32"),
		row[simd.Int32x4, [4]int32]("simd.Int32x4", "[4]int32"),
		row[simd.Int64x2, [2]int64]("simd.Int64x2", "[2]int64"),
		row[simd.Uint32x4, [4]uint32]("simd.Uint32x4", "[4]uint32"),
		row[simd.Mask32x2, [2]uint32]("simd.Mask32x2", "[2]uint32"),
		row[simd.Mask32x4, [4]uint32]("simd.Mask32x4", "[4]uint32"),
		row[simd.Mask64x2, [2]uint64]("simd.Mask64x2", "[2]uint64"),
		row[simd.Mask64x4, [4]uint64]("simd.Mask64x4", "[4]uint64"),
		row[simd.Bool8, uint8]("simd.Bool8", "uint8"),
		row[simd.Bool16, uint16]("simd.Bool16", "uint16"),
		row[simd.Bool32, uint32]("simd.Bool32", "uint32"),
		row[simd.Bool64, uint64]("simd.Bool64", "uint64"),
		row[vec.Vec2[float32], [2]float32]("vec.Vec2[float32]", "[2]float32"),
		row[vec.Vec3[float32], [3]float32]("vec.Vec3[float32]", "[3]float32"),
		row[vec.Vec4[float32], [4]float32]("vec.Vec4[float32]", "[4]float32"),
		row[vec.Vec3[float64], [3]float64]("vec.Vec3[float64]", "[3]float64"),
		row[vec.Vec2[int32], [2]int32]("vec.Vec2[int32]", "[2]int32"),
		row[mat.Mat2[float32], [4]float32]("mat.Mat2[float32]", "[4]float32"),
		row[mat.Mat3[float32], [9]float32]("mat.Mat3[float32]", "[9]float32"),
		row[mat.Mat4[float32], [16]float32]("mat.Mat4[float32]", "[16]float32"),
		row[mat.Mat4[float64], [16]float64]("mat.Mat4[float64]", "[16]float64"),
		row[quat.Quat[float32], [4]float32]("quat.Quat[float32]", "[4]float32"),
		row[pose.Pose2[float32], [3]float32]("pose.Pose2[float32]", "[3]float32"),
		row[pose.Pose3[float32], [7]float32]("pose.Pose3[float32]", "[7]float32"),
		row[geom.Size[int32], [2]int32]("geom.Size[int32]", "[2]int32"),
		row[geom.Rect[float32], [4]float32]("geom.Rect[float32]", "[4]float32"),
	}
}

func printLayout(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Type\tSize\tAlign\tOverlays\tMatch\n")
	fmt.Fprintf(tw, "----\t----\t-----\t--------\t-----\n")
	for _, r := range layoutRows() {
		match := r.size == r.arraySize && r.align == r.arrayAlign
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%v\n", r.name, r.size, r.align, r.arrayName, match)
	}
	return tw.Flush()
}
