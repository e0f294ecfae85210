// Package ownership shows how Go decides who sees a change: values are copied
// on assignment and on call, pointers and reference-like types share, and the
// garbage collector keeps anything reachable alive.
package ownership

import (
	"io"

	"github.com/marcodamonte/concepts/internal/console"
)

// Run prints every ownership demo to w.
func Run(w io.Writer) {
	console.RunAll(w, []console.Demo{
		{Title: "Value semantics — assignment and calls copy", Run: demoValues},
		{Title: "Pointers — sharing and mutating through *T", Run: demoPointers},
		{Title: "Shared headers — slices and maps alias their data", Run: demoSharing},
		{Title: "Explicit copies — clone before you hand it out", Run: demoClone},
		{Title: "No dangling pointers — the GC keeps referents alive", Run: demoNoDangling},
	})
}
