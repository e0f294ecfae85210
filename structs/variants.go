package structs

import (
	"fmt"
	"io"
	"math"
)

// Shape is a closed set: the unexported method means only this package can
// add variants.
type Shape interface {
	isShape()
}

type (
	Circle   struct{ R float64 }
	Square   struct{ Side float64 }
	Triangle struct{ Base, Height float64 }
)

func (Circle) isShape()   {}
func (Square) isShape()   {}
func (Triangle) isShape() {}

// Area dispatches on the concrete variant.
func Area(s Shape) float64 {
	switch v := s.(type) {
	case Circle:
		return math.Pi * v.R * v.R
	case Square:
		return v.Side * v.Side
	case Triangle:
		return v.Base * v.Height / 2
	default:
		panic(fmt.Sprintf("unknown shape %T", s))
	}
}

// Message mixes variants with and without data.
type Message interface{ isMessage() }

type (
	Quit        struct{}
	Move        struct{ X, Y int }
	Write       struct{ Text string }
	ChangeColor struct{ R, G, B uint8 }
)

func (Quit) isMessage()        {}
func (Move) isMessage()        {}
func (Write) isMessage()       {}
func (ChangeColor) isMessage() {}

// Describe renders a Message.
func Describe(m Message) string {
	switch v := m.(type) {
	case Quit:
		return "quit"
	case Move:
		return fmt.Sprintf("move to (%d, %d)", v.X, v.Y)
	case Write:
		return fmt.Sprintf("write %q", v.Text)
	case ChangeColor:
		return fmt.Sprintf("color #%02x%02x%02x", v.R, v.G, v.B)
	}
	return "unknown"
}

func demoVariants(w io.Writer) {
	for _, s := range []Shape{Circle{1}, Square{2}, Triangle{3, 4}} {
		fmt.Fprintf(w, "  %-16T area = %.2f\n", s, Area(s))
	}
	for _, m := range []Message{Quit{}, Move{3, -1}, Write{"hi"}, ChangeColor{255, 128, 0}} {
		fmt.Fprintln(w, " ", Describe(m))
	}
}
