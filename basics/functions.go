package basics

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Divide returns the quotient and remainder of a / b.
func Divide(a, b int) (q, r int, err error) {
	if b == 0 {
		return 0, 0, errors.New("division by zero")
	}
	return a / b, a % b, nil
}

// Sum is variadic: it accepts any number of ints, including none.
func Sum(nums ...int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}

// split uses named results and a bare return.
func split(total int) (x, y int) {
	x = total * 4 / 9
	y = total - x
	return
}

func apply(values []string, fn func(string) string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fn(v))
	}
	return out
}

func demoFunctions(w io.Writer) {
	q, r, err := Divide(17, 5)
	fmt.Fprintf(w, "  Divide(17, 5) = %d rem %d, err=%v\n", q, r, err)
	_, _, err = Divide(1, 0)
	fmt.Fprintln(w, "  Divide(1, 0) err:", err)

	fmt.Fprintln(w, "  Sum()        =", Sum())
	fmt.Fprintln(w, "  Sum(1, 2, 3) =", Sum(1, 2, 3))
	nums := []int{10, 20, 30}
	fmt.Fprintln(w, "  Sum(nums...) =", Sum(nums...))

	x, y := split(18)
	fmt.Fprintf(w, "  split(18) named results: x=%d y=%d\n", x, y)

	// Functions are values: they can be passed, stored and returned.
	fmt.Fprintln(w, "  apply(ToUpper):", apply([]string{"go", "fmt"}, strings.ToUpper))
	shout := func(s string) string { return s + "!" }
	fmt.Fprintln(w, "  apply(literal):", apply([]string{"go", "fmt"}, shout))
}
