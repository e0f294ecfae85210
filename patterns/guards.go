package patterns

import (
	"fmt"
	"io"
)

// Where reports where a point lies, binding fields and testing conditions the
// way a guarded match would.
func Where(p Point) string {
	switch {
	case p.X == 0 && p.Y == 0:
		return "origin"
	case p.Y == 0:
		return fmt.Sprintf("on the x axis at %d", p.X)
	case p.X == 0:
		return fmt.Sprintf("on the y axis at %d", p.Y)
	case p.X == p.Y:
		return "on the diagonal"
	default:
		return fmt.Sprintf("at (%d, %d)", p.X, p.Y)
	}
}

// AgeGroup binds the value and checks a range, like an @ binding.
func AgeGroup(age int) string {
	switch a := age; {
	case a >= 0 && a <= 12:
		return fmt.Sprintf("child (%d)", a)
	case a >= 13 && a <= 19:
		return fmt.Sprintf("teen (%d)", a)
	case a >= 20:
		return fmt.Sprintf("adult (%d)", a)
	default:
		return "invalid"
	}
}

func demoGuards(w io.Writer) {
	for _, p := range []Point{{0, 0}, {5, 0}, {0, -2}, {4, 4}, {1, 2}} {
		fmt.Fprintf(w, "  %v → %s\n", p, Where(p))
	}
	for _, a := range []int{7, 15, 42, -1} {
		fmt.Fprintf(w, "  AgeGroup(%d) = %s\n", a, AgeGroup(a))
	}
}
