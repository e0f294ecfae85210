package basics

import (
	"fmt"
	"io"
)

// demoVariables shows the declaration forms and the zero-value rule: a
// declared variable is always initialized, there is no "undefined".
func demoVariables(w io.Writer) {
	var count int // zero value: 0
	var name string
	var ok bool
	var ratio float64
	fmt.Fprintf(w, "  zero values: int=%d string=%q bool=%t float64=%g\n", count, name, ok, ratio)

	// := declares and infers the type. Only inside functions.
	lang := "Go"
	year := 2009
	fmt.Fprintf(w, "  inferred: lang=%q (%T) year=%d (%T)\n", lang, lang, year, year)

	// Multiple assignment evaluates the right side first, so swapping needs no temp.
	a, b := 1, 2
	a, b = b, a
	fmt.Fprintf(w, "  swap: a=%d b=%d\n", a, b)

	// Variables are mutable; reassignment keeps the type.
	count = 10
	count += 5
	fmt.Fprintln(w, "  count after += :", count)

	// _ discards a value the compiler would otherwise require us to use.
	_, second := pair()
	fmt.Fprintln(w, "  blank identifier kept only:", second)
}

func pair() (int, string) { return 7, "seven" }
