package generics

import (
	"fmt"
	"io"
	"strings"
)

// Shape is the behavior that callers of NewShape get.
type Shape interface {
	Area() float64
	Name() string
}

type rect struct{ w, h float64 }
type square struct{ side float64 }

func (r rect) Area() float64   { return r.w * r.h }
func (r rect) Name() string    { return "rect" }
func (s square) Area() float64 { return s.side * s.side }
func (s square) Name() string  { return "square" }

// NewShape chooses the concrete type at run time; callers only see Shape.
func NewShape(w, h float64) Shape {
	if w == h {
		return square{side: w}
	}
	return rect{w: w, h: h}
}

// Counter returns behavior as a function value instead of an interface.
func Counter(label string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s#%d", label, n)
	}
}

func demoReturning(w io.Writer) {
	for _, dims := range [][2]float64{{2, 3}, {4, 4}} {
		s := NewShape(dims[0], dims[1])
		fmt.Fprintf(w, "  NewShape(%v, %v) → %s with area %.0f\n", dims[0], dims[1], s.Name(), s.Area())
	}

	next := Counter("req")
	fmt.Fprintln(w, "  Counter:", strings.Join([]string{next(), next(), next()}, ", "))

	// The standard library returns interfaces the same way.
	var r io.Reader = strings.NewReader("gopher")
	buf := make([]byte, 3)
	n, _ := r.Read(buf)
	fmt.Fprintf(w, "  io.Reader from strings.NewReader read %d bytes: %q\n", n, buf[:n])
}
