// Package console holds the output helpers shared by the topic packages.
package console

import (
	"fmt"
	"io"
)

// Section prints a section banner.
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

// Demo is one titled demonstration inside a topic.
type Demo struct {
	Title string
	Run   func(w io.Writer)
}

// RunAll prints each demo's banner and then runs it.
func RunAll(w io.Writer, demos []Demo) {
	for _, d := range demos {
		Section(w, d.Title)
		d.Run(w)
	}
}
