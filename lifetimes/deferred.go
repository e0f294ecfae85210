package lifetimes

import (
	"fmt"
	"io"
)

// Trace records entering and leaving a function through defer.
func Trace(log *[]string, name string) func() {
	*log = append(*log, "enter "+name)
	return func() { *log = append(*log, "leave "+name) }
}

// Order returns the sequence in which deferred calls ran.
func Order() []string {
	var got []string
	func() {
		for i := range 3 {
			defer func() { got = append(got, fmt.Sprint(i)) }()
		}
	}()
	return got
}

// Double uses a named result that a deferred closure can still change.
func Double(x int) (result int) {
	defer func() { result *= 2 }()
	return x
}

func demoDefer(w io.Writer) {
	var log []string
	func() {
		defer Trace(&log, "outer")()
		func() {
			defer Trace(&log, "inner")()
			log = append(log, "work")
		}()
	}()
	for _, l := range log {
		fmt.Fprintln(w, " ", l)
	}

	fmt.Fprintln(w, "  defers run LIFO:", Order())

	x := 1
	func() {
		defer fmt.Fprintln(w, "  deferred argument captured at defer time: x =", x)
		x = 100
	}()

	fmt.Fprintln(w, "  Double(21) via deferred named result =", Double(21))
}
