package menu

import (
	"fmt"
	"io"
)

// Action is a demonstration routine. It takes no input and only writes to the
// console.
type Action func()

// Topic is one menu entry. Its position in the topic slice defines its
// 1-based menu number.
type Topic struct {
	Label  string
	Ref    string // optional reference URL, printed before the action runs
	Action Action
}

// All returns a topic that runs every given topic in order, printing each
// label as a header first. Headers go to w.
func All(label string, w io.Writer, topics []Topic) Topic {
	// Copy so later edits to the caller's slice can't change what runs.
	list := append([]Topic(nil), topics...)
	return Topic{
		Label: label,
		Action: func() {
			for i, t := range list {
				fmt.Fprintf(w, "\n╔══ %d. %s ══╗\n", i+1, t.Label)
				t.Action()
			}
		},
	}
}
