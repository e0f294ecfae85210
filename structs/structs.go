// Package structs covers user-defined types: structs with methods, embedding,
// enumerations built on iota, and closed sets of variants built on
// interfaces.
package structs

import (
	"io"

	"github.com/marcodamonte/concepts/internal/console"
)

// Run prints every structs demo to w.
func Run(w io.Writer) {
	console.RunAll(w, []console.Demo{
		{Title: "Structs — literals, anonymous structs, comparison", Run: demoStructs},
		{Title: "Methods — value vs pointer receivers, constructors", Run: demoMethods},
		{Title: "Embedding — promoted fields and methods", Run: demoEmbedding},
		{Title: "Enums — iota, String(), validation", Run: demoEnums},
		{Title: "Variants — sealed interfaces as sum types", Run: demoVariants},
	})
}
