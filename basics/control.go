package basics

import (
	"fmt"
	"io"
	"strings"
)

// Classify returns a label for n using a tagless switch.
func Classify(n int) string {
	switch {
	case n < 0:
		return "negative"
	case n == 0:
		return "zero"
	case n%2 == 0:
		return "even"
	default:
		return "odd"
	}
}

func demoControlFlow(w io.Writer) {
	// if with a short statement; v is scoped to the if/else chain.
	if v := 7 * 6; v > 40 {
		fmt.Fprintln(w, "  if with init: v =", v, "> 40")
	}

	// for is the only loop keyword: classic, condition-only, range, infinite.
	var sb strings.Builder
	for i := 0; i < 5; i++ {
		fmt.Fprintf(&sb, "%d ", i)
	}
	fmt.Fprintln(w, "  classic for:", strings.TrimSpace(sb.String()))

	n := 1
	for n < 100 {
		n *= 3
	}
	fmt.Fprintln(w, "  while-style for: first power of 3 >= 100 is", n)

	for i, r := range "go!" {
		fmt.Fprintf(w, "  range string: i=%d r=%q\n", i, r)
	}

	for i := range 3 { // Go 1.22 range over int
		fmt.Fprintf(w, "  range 3: %d\n", i)
	}

	// Labels let break/continue target an outer loop.
	found := ""
outer:
	for _, row := range [][]int{{1, 3}, {4, 6}, {7, 9}} {
		for _, v := range row {
			if v%2 == 0 {
				found = fmt.Sprint(row)
				break outer
			}
		}
	}
	fmt.Fprintln(w, "  labeled break: first row with an even value:", found)

	for _, v := range []int{-3, 0, 4, 9} {
		fmt.Fprintf(w, "  Classify(%d) = %s\n", v, Classify(v))
	}
}
