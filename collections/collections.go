// Package collections covers the built-in containers (slices, strings, maps)
// and the standard library helpers that work on them.
package collections

import (
	"io"

	"github.com/marcodamonte/concepts/internal/console"
)

// Run prints every collections demo to w.
func Run(w io.Writer) {
	console.RunAll(w, []console.Demo{
		{Title: "Slices — make, append growth, indexing, subslice gotcha", Run: demoSlices},
		{Title: "slices package — sort, search, insert, delete, compact", Run: demoSlicesPkg},
		{Title: "Strings — bytes vs runes, Builder, strings helpers", Run: demoStrings},
		{Title: "Maps — insert, lookup, delete, ordered iteration", Run: demoMaps},
		{Title: "Word count — map update in place", Run: demoWordCount},
		{Title: "Other containers — sets, heaps, lists", Run: demoOther},
	})
}
