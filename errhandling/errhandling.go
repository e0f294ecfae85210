// Package errhandling walks through Go's error model: errors are values
// returned alongside results, inspected with errors.Is and errors.As, wrapped
// for context, and panics are reserved for bugs.
package errhandling

import (
	"io"

	"github.com/marcodamonte/concepts/internal/console"
)

// Run prints every error-handling demo to w.
func Run(w io.Writer) {
	console.RunAll(w, []console.Demo{
		{Title: "Errors are values — (T, error) and early return", Run: demoValues},
		{Title: "Sentinels and errors.Is", Run: demoSentinel},
		{Title: "Custom types and errors.As", Run: demoCustomType},
		{Title: "Propagation — wrapping with %w at each layer", Run: demoPropagation},
		{Title: "Collecting failures — errors.Join and validation", Run: demoValidation},
		{Title: "panic and recover — for bugs, not for control flow", Run: demoPanic},
	})
}
