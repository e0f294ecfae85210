package ownership

import (
	"fmt"
	"io"
)

// NewCounter returns a pointer to a local variable. That is safe in Go: the
// variable escapes to the heap and lives as long as someone references it.
func NewCounter(start int) *int {
	c := start
	return &c
}

// FirstWord returns the first space-separated word of s. The result shares
// s's bytes; strings are immutable, so nothing can change under the caller.
func FirstWord(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return s[:i]
		}
	}
	return s
}

func demoNoDangling(w io.Writer) {
	c := NewCounter(10)
	*c++
	fmt.Fprintln(w, "  pointer to a returned local:", *c)

	fmt.Fprintf(w, "  FirstWord(%q) = %q\n", "hello world", FirstWord("hello world"))
	fmt.Fprintf(w, "  FirstWord(%q) = %q\n", "single", FirstWord("single"))

	// When the last reference goes away the value becomes garbage; there is
	// no free() and no way to reach freed memory.
	c = nil
	fmt.Fprintln(w, "  c = nil: the int is now unreachable and will be collected")
}
