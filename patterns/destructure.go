package patterns

import (
	"fmt"
	"io"
	"strings"
)

// Point is destructured by field access; Go has no struct patterns.
type Point struct{ X, Y int }

// Coordinates returns both fields, so callers can unpack them in one assignment.
func (p Point) Coordinates() (int, int) { return p.X, p.Y }

// MinMax returns the smallest and largest element of a non-empty slice.
func MinMax(xs []int) (lo, hi int) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		lo, hi = min(lo, x), max(hi, x)
	}
	return lo, hi
}

func demoDestructure(w io.Writer) {
	x, y := Point{3, -7}.Coordinates()
	fmt.Fprintf(w, "  x, y := p.Coordinates() → x=%d y=%d\n", x, y)

	lo, hi := MinMax([]int{4, 9, -2, 7})
	fmt.Fprintf(w, "  MinMax → lo=%d hi=%d\n", lo, hi)

	// Ignore what you don't need.
	_, onlyHi := MinMax([]int{1, 5})
	fmt.Fprintln(w, "  _, onlyHi →", onlyHi)

	// strings.Cut splits into two named parts plus a found flag.
	key, value, found := strings.Cut("user=ana", "=")
	fmt.Fprintf(w, "  Cut(\"user=ana\") → key=%q value=%q found=%t\n", key, value, found)

	// Range destructures index and element; either can be blanked.
	pairs := [][2]string{{"a", "1"}, {"b", "2"}}
	for _, kv := range pairs {
		k, v := kv[0], kv[1]
		fmt.Fprintf(w, "  array pair → %s:%s\n", k, v)
	}
}
