package ownership

import (
	"fmt"
	"io"
)

func zeroFirst(s []int) {
	if len(s) > 0 {
		s[0] = 0 // writes into the caller's backing array
	}
}

func appendLocal(s []int) []int {
	return append(s, 4) // the caller's len is unchanged
}

func demoSharing(w io.Writer) {
	// A slice value is a small header {ptr, len, cap}; copying it shares the array.
	nums := []int{1, 2, 3}
	alias := nums
	alias[1] = 20
	fmt.Fprintf(w, "  nums=%v alias=%v (same backing array)\n", nums, alias)

	zeroFirst(nums)
	fmt.Fprintln(w, "  after zeroFirst(nums):", nums)

	grown := appendLocal(nums)
	fmt.Fprintf(w, "  appendLocal: nums=%v (len %d) grown=%v (len %d)\n", nums, len(nums), grown, len(grown))

	// Maps are references to a runtime structure: every copy sees writes.
	scores := map[string]int{"ana": 1}
	view := scores
	view["bea"] = 2
	fmt.Fprintf(w, "  maps share: len(scores)=%d len(view)=%d\n", len(scores), len(view))

	// Sub-slices share too.
	word := []byte("gopher")
	prefix := word[:2]
	prefix[0] = 'G'
	fmt.Fprintf(w, "  sub-slice write: word=%q prefix=%q\n", word, prefix)
}
