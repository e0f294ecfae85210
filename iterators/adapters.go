package iterators

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// Map lazily applies fn to each element of seq.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter lazily keeps the elements for which keep returns true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Take stops after n elements, even on an infinite sequence.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// Zip pairs elements of two sequences until either ends.
func Zip[A, B any](as iter.Seq[A], bs iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		next, stop := iter.Pull(bs)
		defer stop()
		for a := range as {
			b, ok := next()
			if !ok || !yield(a, b) {
				return
			}
		}
	}
}

func demoAdapters(w io.Writer) {
	evens := Filter(Range(1, 11, 1), func(n int) bool { return n%2 == 0 })
	squares := Map(evens, func(n int) int { return n * n })
	fmt.Fprintln(w, "  squares of evens in 1..10:", slices.Collect(squares))

	// Nothing runs until the sequence is consumed; Take bounds an infinite one.
	calls := 0
	traced := Map(Fib(), func(n int) int { calls++; return n })
	first := slices.Collect(Take(traced, 6))
	fmt.Fprintf(w, "  Take(Fib(), 6) = %v after %d calls\n", first, calls)

	words := slices.Values([]string{"map", "filter", "take"})
	fmt.Fprintln(w, "  Map(ToUpper):", slices.Collect(Map(words, strings.ToUpper)))

	for name, age := range Zip(slices.Values([]string{"ana", "bea", "carl"}), slices.Values([]int{29, 35})) {
		fmt.Fprintf(w, "  Zip: %s is %d\n", name, age)
	}
}
