// Package basics covers the first things every Go program uses: variables,
// constants, basic types, functions and control flow.
package basics

import (
	"io"

	"github.com/marcodamonte/concepts/internal/console"
)

// Run prints every basics demo to w.
func Run(w io.Writer) {
	console.RunAll(w, []console.Demo{
		{Title: "Variables — var, :=, zero values, multiple assignment", Run: demoVariables},
		{Title: "Constants — typed, untyped, iota", Run: demoConstants},
		{Title: "Types — numbers, conversions, strings vs runes", Run: demoTypes},
		{Title: "Functions — multiple results, named results, variadic, values", Run: demoFunctions},
		{Title: "Control flow — if with init, for forms, switch, labels", Run: demoControlFlow},
	})
}
