package lifetimes

import (
	"fmt"
	"io"
)

// Inspect the compiler's decisions with:
//
//	go build -gcflags=-m ./lifetimes

// sumLocal keeps arr on its own stack frame; nothing outlives the call.
func sumLocal() int {
	arr := [4]int{1, 2, 3, 4}
	total := 0
	for _, v := range arr {
		total += v
	}
	return total
}

// NewBuffer returns a pointer to a local. The slice and the struct outlive
// the frame, so both move to the heap.
func NewBuffer(n int) *Buffer {
	b := Buffer{data: make([]byte, 0, n)}
	return &b
}

// Buffer is a growable byte buffer.
type Buffer struct{ data []byte }

func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *Buffer) String() string { return string(b.data) }

// Generator captures count in a closure, so count escapes too.
func Generator() func() int {
	count := 0
	return func() int {
		count++
		return count
	}
}

func demoEscape(w io.Writer) {
	fmt.Fprintln(w, "  sumLocal() =", sumLocal(), " (array stays on the stack)")

	buf := NewBuffer(16)
	fmt.Fprintf(buf, "written after %s returned", "NewBuffer")
	fmt.Fprintf(w, "  NewBuffer(16): %q  (escaped to the heap)\n", buf.String())

	gen := Generator()
	gen()
	fmt.Fprintln(w, "  Generator() second call =", gen(), " (captured count escaped)")
}
