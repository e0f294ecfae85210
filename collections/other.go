package collections

import (
	"container/heap"
	"container/list"
	"fmt"
	"io"
	"maps"
	"slices"
)

// Set is a map with empty-struct values.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Intersect returns the elements present in both sets.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	out := Set[T]{}
	for v := range s {
		if other.Has(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// IntHeap is a min-heap for container/heap.
type IntHeap []int

func (h IntHeap) Len() int           { return len(h) }
func (h IntHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h IntHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *IntHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *IntHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Drain pops every element of h in priority order.
func Drain(h *IntHeap) []int {
	var out []int
	for h.Len() > 0 {
		out = append(out, heap.Pop(h).(int))
	}
	return out
}

func demoOther(w io.Writer) {
	a := NewSet("go", "rust", "zig")
	b := NewSet("go", "zig", "c")
	common := slices.Sorted(maps.Keys(a.Intersect(b)))
	fmt.Fprintln(w, "  Set intersection:", common, " a.Has(\"c\"):", a.Has("c"))

	h := &IntHeap{5, 2, 8}
	heap.Init(h)
	heap.Push(h, 1)
	fmt.Fprintln(w, "  min-heap drain:", Drain(h))

	// A doubly linked list works as a deque.
	dq := list.New()
	dq.PushBack(2)
	dq.PushBack(3)
	dq.PushFront(1)
	var order []any
	for e := dq.Front(); e != nil; e = e.Next() {
		order = append(order, e.Value)
	}
	dq.Remove(dq.Back())
	fmt.Fprintln(w, "  list as deque:", order, " len after Remove(Back):", dq.Len())
}
