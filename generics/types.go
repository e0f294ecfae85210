package generics

import (
	"cmp"
	"fmt"
	"io"
)

// Pair holds two values of possibly different types.
type Pair[K comparable, V any] struct {
	Key K
	Val V
}

func (p Pair[K, V]) String() string { return fmt.Sprintf("%v=%v", p.Key, p.Val) }

// Swap returns a Pair with the roles exchanged. Methods can't introduce new
// type parameters, so this is a function.
func Swap[K, V comparable](p Pair[K, V]) Pair[V, K] {
	return Pair[V, K]{Key: p.Val, Val: p.Key}
}

// Stack is a LIFO stack. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top element; ok is false when empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	v = s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

func (s *Stack[T]) Len() int { return len(s.items) }

// MaxOf is only defined for Stacks of ordered elements, so it is a function
// with a tighter constraint than Stack itself.
func MaxOf[T cmp.Ordered](s *Stack[T]) (T, bool) {
	var zero T
	if s.Len() == 0 {
		return zero, false
	}
	return Largest(s.items), true
}

func demoTypes(w io.Writer) {
	p := Pair[string, int]{Key: "answer", Val: 42}
	fmt.Fprintln(w, "  Pair:", p, "  Swap:", Swap(p))

	var s Stack[string]
	for _, v := range []string{"a", "b", "c"} {
		s.Push(v)
	}
	top, _ := s.Pop()
	fmt.Fprintf(w, "  Stack[string]: popped %q, len now %d\n", top, s.Len())

	var nums Stack[int]
	nums.Push(3)
	nums.Push(9)
	nums.Push(4)
	if m, ok := MaxOf(&nums); ok {
		fmt.Fprintln(w, "  MaxOf(Stack[int]{3, 9, 4}) =", m)
	}

	var empty Stack[float64]
	_, ok := empty.Pop()
	fmt.Fprintln(w, "  Pop on empty Stack[float64]: ok =", ok)
}
