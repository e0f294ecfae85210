package lifetimes

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Excerpt holds a view into text it does not own.
type Excerpt struct {
	Part string
}

// FirstSentence returns an Excerpt that shares text's memory.
func FirstSentence(text string) Excerpt {
	part, _, _ := strings.Cut(text, ".")
	return Excerpt{Part: part}
}

// Longest returns the longer of two strings. Either argument may be
// returned; no annotation is needed because the GC keeps both alive.
func Longest(a, b string) string {
	if len(b) > len(a) {
		return b
	}
	return a
}

// HeaderView returns the first n bytes of payload without copying. The
// whole payload stays reachable as long as the view does.
func HeaderView(payload []byte, n int) []byte { return payload[:n:n] }

// HeaderCopy clones the first n bytes so payload can be collected.
func HeaderCopy(payload []byte, n int) []byte { return bytes.Clone(payload[:n]) }

func demoViews(w io.Writer) {
	novel := "Call me Ishmael. Some years ago..."
	e := FirstSentence(novel)
	fmt.Fprintf(w, "  FirstSentence → %q\n", e.Part)

	var result string
	s1 := "long string is long"
	{
		s2 := "xyz"
		result = Longest(s1, s2)
	}
	fmt.Fprintf(w, "  Longest outlives the block of s2: %q\n", result)

	payload := bytes.Repeat([]byte{'x'}, 1<<20)
	copy(payload, "HDR1")
	view := HeaderView(payload, 4)
	owned := HeaderCopy(payload, 4)
	fmt.Fprintf(w, "  view=%q cap=%d (pins 1 MiB)  copy=%q len=%d\n", view, cap(view), owned, len(owned))

	payload[0] = 'h'
	fmt.Fprintf(w, "  after payload[0]='h': view=%q copy=%q\n", view, owned)
}
