package errhandling

import (
	"fmt"
	"io"
)

// SafeIndex converts an out-of-range panic into an error. Recovering is
// appropriate at boundaries; inside a package, return errors instead.
func SafeIndex(xs []int, i int) (v int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return xs[i], nil
}

func demoPanic(w io.Writer) {
	xs := []int{10, 20, 30}

	v, err := SafeIndex(xs, 1)
	fmt.Fprintf(w, "  SafeIndex(xs, 1) = %d, err=%v\n", v, err)

	_, err = SafeIndex(xs, 5)
	fmt.Fprintln(w, "  SafeIndex(xs, 5) err:", err)

	// A panic with an error value can be inspected after recover.
	func() {
		defer func() {
			r := recover()
			if e, ok := r.(error); ok {
				fmt.Fprintln(w, "  Must panicked with error:", e)
			}
		}()
		Must(ParsePort("nope"))
	}()
}
