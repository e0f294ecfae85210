// Package patterns collects the ways Go branches on the shape of a value:
// switch statements, type switches, comma-ok forms and destructuring
// assignment.
package patterns

import (
	"io"

	"github.com/marcodamonte/concepts/internal/console"
)

// Run prints every patterns demo to w.
func Run(w io.Writer) {
	console.RunAll(w, []console.Demo{
		{Title: "switch — values, lists, ranges, fallthrough", Run: demoSwitch},
		{Title: "Type switch — matching on dynamic type", Run: demoTypeSwitch},
		{Title: "comma-ok — maps, type assertions, channels", Run: demoCommaOK},
		{Title: "Destructuring — multiple results, ignoring values", Run: demoDestructure},
		{Title: "Guards — conditions on bound values", Run: demoGuards},
	})
}
