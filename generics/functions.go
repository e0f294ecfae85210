package generics

import (
	"cmp"
	"fmt"
	"io"
)

// Number is a union constraint; ~ admits named types built on these.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Largest returns the biggest element of a non-empty slice.
func Largest[T cmp.Ordered](xs []T) T {
	best := xs[0]
	for _, x := range xs[1:] {
		if x > best {
			best = x
		}
	}
	return best
}

// Sum adds every element.
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Map applies fn to every element. Two type parameters, both inferred.
func Map[T, U any](xs []T, fn func(T) U) []U {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		out = append(out, fn(x))
	}
	return out
}

// Index returns the position of v in xs, or -1.
func Index[T comparable](xs []T, v T) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}

// Meters is a named type; ~float64 in Number still accepts it.
type Meters float64

func demoFunctions(w io.Writer) {
	fmt.Fprintln(w, "  Largest([]int{34, 50, 25, 100, 65}) =", Largest([]int{34, 50, 25, 100, 65}))
	fmt.Fprintln(w, "  Largest([]rune(\"ymaq\"))             =", string(Largest([]rune("ymaq"))))
	fmt.Fprintln(w, "  Largest([]string{...})              =", Largest([]string{"pear", "apple", "zucchini"}))

	fmt.Fprintln(w, "  Sum([]float64{1.5, 2.5})       =", Sum([]float64{1.5, 2.5}))
	fmt.Fprintln(w, "  Sum([]Meters{100, 42.195})     =", Sum([]Meters{100, 42.195}))

	lengths := Map([]string{"go", "rust", "zig"}, func(s string) int { return len(s) })
	fmt.Fprintln(w, "  Map(strings, len)              =", lengths)

	// Explicit instantiation is allowed when inference isn't possible or wanted.
	toStr := Map[int, string]
	fmt.Fprintln(w, "  Map[int, string](Sprint)       =", toStr([]int{1, 2}, func(i int) string { return fmt.Sprint(i) }))

	fmt.Fprintln(w, "  Index([]string{a,b,c}, \"c\")    =", Index([]string{"a", "b", "c"}, "c"))
}
