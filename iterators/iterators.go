// Package iterators covers closures and the iterator protocol added in Go
// 1.23: functions of type iter.Seq that range loops can consume.
package iterators

import (
	"io"

	"github.com/marcodamonte/concepts/internal/console"
)

// Run prints every closures-and-iterators demo to w.
func Run(w io.Writer) {
	console.RunAll(w, []console.Demo{
		{Title: "Closures — literals, capture by reference, state", Run: demoClosures},
		{Title: "Functions as parameters — callbacks and options", Run: demoParams},
		{Title: "Iterators — iter.Seq, range over func, early stop", Run: demoIterators},
		{Title: "Adapters — Map, Filter, Take over sequences", Run: demoAdapters},
		{Title: "Consumers — Collect, Reduce, Count, pull iterators", Run: demoConsumers},
	})
}
