// Package generics pairs Go's two kinds of polymorphism: interfaces, which
// describe behavior and are satisfied implicitly, and type parameters, which
// let one function or type work over many concrete types.
package generics

import (
	"io"

	"github.com/marcodamonte/concepts/internal/console"
)

// Run prints every interfaces-and-generics demo to w.
func Run(w io.Writer) {
	console.RunAll(w, []console.Demo{
		{Title: "Interfaces — implicit satisfaction, composition, assertion", Run: demoInterfaces},
		{Title: "Returning interfaces — hide the concrete type", Run: demoReturning},
		{Title: "Generic functions — constraints, inference, ~T", Run: demoFunctions},
		{Title: "Generic types — Pair[K, V], Stack[T]", Run: demoTypes},
		{Title: "Constraints with methods — interface-bounded type parameters", Run: demoBounds},
	})
}
