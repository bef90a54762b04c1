package mat

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-linalg/num"
)

// format prints an n x n matrix one row per line, e.g. "[1 0]\n[0 1]".
func format[T num.Float](n int, at func(r, c int) T) string {
	var b strings.Builder
	for r := 0; r < n; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for c := 0; c < n; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, at(r, c))
		}
		b.WriteByte(']')
	}
	return b.String()
}
