// Package lifetimes looks at how long values live in Go. There are no
// lifetime annotations: scope limits where a name is visible, escape
// analysis decides stack or heap, the garbage collector frees what is
// unreachable, and defer ties cleanup to function exit.
package lifetimes

import (
	"io"

	"github.com/marcodamonte/concepts/internal/console"
)

// Run prints every lifetimes demo to w.
func Run(w io.Writer) {
	console.RunAll(w, []console.Demo{
		{Title: "Scope — blocks, shadowing, package-level values", Run: demoScope},
		{Title: "Escape analysis — stack vs heap", Run: demoEscape},
		{Title: "Borrowed views — sub-slices keep their array alive", Run: demoViews},
		{Title: "defer — cleanup at function exit, LIFO, argument timing", Run: demoDefer},
		{Title: "Resources in loops — scope cleanup with a helper", Run: demoLoopResources},
	})
}
