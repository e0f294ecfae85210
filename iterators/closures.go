package iterators

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// MakeCounter returns a closure that owns its own count.
func MakeCounter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

// Adder returns a function that adds base to its argument.
func Adder(base int) func(int) int {
	return func(x int) int { return x + base }
}

func demoClosures(w io.Writer) {
	square := func(x int) int { return x * x }
	fmt.Fprintln(w, "  square(7) =", square(7))

	// Closures capture variables, not values: later writes are visible.
	threshold := 10
	above := func(x int) bool { return x > threshold }
	fmt.Fprintln(w, "  above(12) with threshold 10:", above(12))
	threshold = 20
	fmt.Fprintln(w, "  above(12) with threshold 20:", above(12))

	c1, c2 := MakeCounter(), MakeCounter()
	c1()
	c1()
	fmt.Fprintf(w, "  independent counters: c1=%d c2=%d\n", c1(), c2())

	add5 := Adder(5)
	fmt.Fprintln(w, "  Adder(5)(10) =", add5(10))

	// Since Go 1.22 each loop iteration has its own variable.
	var funcs []func() int
	for i := range 3 {
		funcs = append(funcs, func() int { return i })
	}
	var got []int
	for _, f := range funcs {
		got = append(got, f())
	}
	fmt.Fprintln(w, "  per-iteration loop variables:", got)

	// Closures can modify captured state, e.g. to collect results.
	var seen []string
	record := func(s string) { seen = append(seen, strings.ToUpper(s)) }
	record("a")
	record("b")
	fmt.Fprintln(w, "  captured slice after record(a), record(b):", seen)

	people := []struct {
		Name string
		Age  int
	}{{"carl", 41}, {"ana", 29}, {"bea", 35}}
	sort.Slice(people, func(i, j int) bool { return people[i].Age < people[j].Age })
	fmt.Fprintln(w, "  sort.Slice by age:", people)
}
