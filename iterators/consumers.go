package iterators

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// Reduce folds seq into a single value.
func Reduce[T, A any](seq iter.Seq[T], init A, fn func(A, T) A) A {
	acc := init
	for v := range seq {
		acc = fn(acc, v)
	}
	return acc
}

// Count consumes seq and returns its length.
func Count[T any](seq iter.Seq[T]) int {
	return Reduce(seq, 0, func(n int, _ T) int { return n + 1 })
}

// Find returns the first element matching pred.
func Find[T any](seq iter.Seq[T], pred func(T) bool) (T, bool) {
	for v := range seq {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func demoConsumers(w io.Writer) {
	nums := slices.Values([]int{3, 1, 4, 1, 5, 9, 2, 6})

	sum := Reduce(nums, 0, func(a, n int) int { return a + n })
	fmt.Fprintln(w, "  Reduce sum:", sum)
	fmt.Fprintln(w, "  Count:", Count(nums))

	if v, ok := Find(nums, func(n int) bool { return n > 4 }); ok {
		fmt.Fprintln(w, "  Find first > 4:", v)
	}
	_, ok := Find(nums, func(n int) bool { return n > 100 })
	fmt.Fprintln(w, "  Find > 100 found:", ok)

	joined := Reduce(Map(nums, func(n int) string { return fmt.Sprint(n) }), "", func(a, s string) string {
		if a == "" {
			return s
		}
		return a + "-" + s
	})
	fmt.Fprintln(w, "  Reduce to string:", joined)

	// iter.Pull turns a push sequence into explicit next() calls.
	next, stop := iter.Pull(Fib())
	defer stop()
	var pulled []int
	for range 5 {
		v, _ := next()
		pulled = append(pulled, v)
	}
	fmt.Fprintln(w, "  iter.Pull(Fib()) five times:", pulled)
}
