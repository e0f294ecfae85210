package lifetimes

import (
	"fmt"
	"io"
)

// Greeting lives for the whole program, like a 'static value.
const Greeting = "I live as long as the program"

var started = "package init"

func demoScope(w io.Writer) {
	x := 1
	{
		x := 2 // shadows the outer x in this block only
		y := 3
		fmt.Fprintf(w, "  inner block: x=%d y=%d\n", x, y)
	}
	// y is not visible here: the compiler enforces block scope.
	fmt.Fprintln(w, "  outer block: x =", x)

	if v, err := fmt.Sscan("42", &x); err == nil {
		fmt.Fprintf(w, "  if-scoped v=%d, x updated to %d\n", v, x)
	}

	fmt.Fprintln(w, "  const:", Greeting)
	fmt.Fprintln(w, "  package var set during:", started)
}
