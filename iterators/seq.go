package iterators

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
)

// Fib yields the Fibonacci numbers forever; range stops it with break.
func Fib() iter.Seq[int] {
	return func(yield func(int) bool) {
		a, b := 0, 1
		for {
			if !yield(a) {
				return
			}
			a, b = b, a+b
		}
	}
}

// Range yields start, start+step, ... while below end.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; i < end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Counter yields 1..max, like a hand-written iterator with Next.
type Counter struct{ Max int }

// All returns the counter's values as a sequence.
func (c Counter) All() iter.Seq[int] { return Range(1, c.Max+1, 1) }

// Enumerate pairs each element with its index.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

func demoIterators(w io.Writer) {
	var fibs []int
	for n := range Fib() {
		if n > 50 {
			break
		}
		fibs = append(fibs, n)
	}
	fmt.Fprintln(w, "  Fib() until > 50:", fibs)

	fmt.Fprintln(w, "  Range(0, 10, 3):", slices.Collect(Range(0, 10, 3)))
	fmt.Fprintln(w, "  Counter{5}.All():", slices.Collect(Counter{Max: 5}.All()))

	for i, s := range Enumerate(slices.Values([]string{"x", "y"})) {
		fmt.Fprintf(w, "  Enumerate: %d → %s\n", i, s)
	}

	// The standard library exposes iterators too.
	ages := map[string]int{"bea": 35, "ana": 29}
	for _, k := range slices.Sorted(maps.Keys(ages)) {
		fmt.Fprintf(w, "  maps.Keys sorted: %s=%d\n", k, ages[k])
	}
	for i, v := range slices.Backward([]int{1, 2, 3}) {
		fmt.Fprintf(w, "  slices.Backward: [%d]=%d\n", i, v)
	}
}
