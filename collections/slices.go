package collections

import (
	"fmt"
	"io"
	"slices"
)

// Cell is a tagged value so one slice can hold several kinds of data.
type Cell struct {
	Kind string
	Int  int
	Text string
}

func demoSlices(w io.Writer) {
	var empty []int
	v := []int{1, 2, 3}
	pre := make([]int, 0, 8)
	fmt.Fprintf(w, "  nil slice len=%d nil=%t | literal %v | make len=%d cap=%d\n",
		len(empty), empty == nil, v, len(pre), cap(pre))

	// Appending past cap allocates a bigger array; always keep the result.
	grew := 0
	prev := cap(empty)
	for i := range 10 {
		empty = append(empty, i)
		if cap(empty) != prev {
			grew++
			prev = cap(empty)
		}
	}
	fmt.Fprintf(w, "  10 appends to a nil slice: len=%d cap=%d after %d reallocations\n", len(empty), cap(empty), grew)

	// Indexing past len panics; check first when the index is untrusted.
	if i := 10; i < len(v) {
		fmt.Fprintln(w, "  v[10] =", v[i])
	} else {
		fmt.Fprintf(w, "  v[%d] would panic: len is %d\n", i, len(v))
	}

	// Sub-slices share memory; a 3-index slice caps them so append copies.
	orig := []int{1, 2, 3, 4, 5}
	sub := orig[1:3]
	sub = append(sub, 99)
	fmt.Fprintf(w, "  append to orig[1:3]   → orig=%v\n", orig)
	orig2 := []int{1, 2, 3, 4, 5}
	safe := orig2[1:3:3]
	safe = append(safe, 99)
	fmt.Fprintf(w, "  append to orig[1:3:3] → orig=%v safe=%v\n", orig2, safe)

	// Range gives a copy of each element; write through the index.
	for i := range v {
		v[i] *= 10
	}
	fmt.Fprintln(w, "  doubled in place via index:", v)

	row := []Cell{{Kind: "int", Int: 3}, {Kind: "text", Text: "blue"}, {Kind: "int", Int: 10}}
	for _, c := range row {
		switch c.Kind {
		case "int":
			fmt.Fprintf(w, "  cell int:  %d\n", c.Int)
		case "text":
			fmt.Fprintf(w, "  cell text: %q\n", c.Text)
		}
	}
}

func demoSlicesPkg(w io.Writer) {
	xs := []int{5, 2, 8, 2, 9, 1, 5}

	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	fmt.Fprintln(w, "  Sort:", sorted, " original untouched:", xs)

	i, found := slices.BinarySearch(sorted, 8)
	fmt.Fprintf(w, "  BinarySearch(8) → index %d found=%t\n", i, found)

	fmt.Fprintln(w, "  Compact(sorted):", slices.Compact(slices.Clone(sorted)))
	fmt.Fprintln(w, "  Index(xs, 9):", slices.Index(xs, 9), " Contains(xs, 7):", slices.Contains(xs, 7))
	fmt.Fprintln(w, "  Insert(xs, 1, 100):", slices.Insert(slices.Clone(xs), 1, 100))
	fmt.Fprintln(w, "  Delete(xs, 0, 2):", slices.Delete(slices.Clone(xs), 0, 2))
	fmt.Fprintln(w, "  Max(xs):", slices.Max(xs), " Min(xs):", slices.Min(xs))

	rev := slices.Clone(xs)
	slices.Reverse(rev)
	fmt.Fprintln(w, "  Reverse:", rev)
}
