package basics

import (
	"fmt"
	"io"
)

// Untyped constants have arbitrary precision until they are used.
const (
	Big   = 1 << 100
	Small = Big >> 99 // 2
)

// Weekday values are generated with iota; it restarts at 0 in each const block.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Size units use iota in an expression; _ skips the zero value.
const (
	_  = iota
	KB = 1 << (10 * iota)
	MB
	GB
)

func demoConstants(w io.Writer) {
	const greeting = "hello" // untyped string constant
	fmt.Fprintln(w, "  untyped constant:", greeting)

	// Big does not fit in any integer type, but expressions on it are fine
	// as long as the result does.
	fmt.Fprintln(w, "  Big >> 99 =", Small)
	fmt.Fprintf(w, "  Big as float64 = %.3e\n", float64(Big))

	// The same untyped constant adapts to the type of its context.
	var f float32 = Small
	var i int64 = Small
	fmt.Fprintf(w, "  Small as float32=%v int64=%v\n", f, i)

	fmt.Fprintf(w, "  iota: Sunday=%d Wednesday=%d Saturday=%d\n", Sunday, Wednesday, Saturday)
	fmt.Fprintf(w, "  iota expression: KB=%d MB=%d GB=%d\n", KB, MB, GB)
}
