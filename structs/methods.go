package structs

import (
	"errors"
	"fmt"
	"io"
)

// Rect is a rectangle with integer sides.
type Rect struct {
	Width, Height int
}

// NewRect is the constructor convention: validate, then return the value.
func NewRect(w, h int) (Rect, error) {
	if w <= 0 || h <= 0 {
		return Rect{}, errors.New("sides must be positive")
	}
	return Rect{Width: w, Height: h}, nil
}

// NewSquare builds a Rect with equal sides.
func NewSquare(size int) Rect { return Rect{Width: size, Height: size} }

func (r Rect) Area() int { return r.Width * r.Height }

// CanHold reports whether other fits strictly inside r.
func (r Rect) CanHold(other Rect) bool {
	return r.Width > other.Width && r.Height > other.Height
}

// Scale changes r in place, so it needs a pointer receiver.
func (r *Rect) Scale(f int) {
	r.Width *= f
	r.Height *= f
}

func (r Rect) String() string { return fmt.Sprintf("%dx%d", r.Width, r.Height) }

func demoMethods(w io.Writer) {
	r, err := NewRect(30, 50)
	if err != nil {
		fmt.Fprintln(w, "  unexpected:", err)
		return
	}
	fmt.Fprintf(w, "  %v area = %d\n", r, r.Area())

	small, big := Rect{10, 40}, Rect{60, 45}
	fmt.Fprintf(w, "  %v.CanHold(%v) = %t\n", r, small, r.CanHold(small))
	fmt.Fprintf(w, "  %v.CanHold(%v) = %t\n", r, big, r.CanHold(big))

	sq := NewSquare(3)
	sq.Scale(2)
	fmt.Fprintln(w, "  NewSquare(3) scaled by 2:", sq)

	_, err = NewRect(0, 1)
	fmt.Fprintln(w, "  NewRect(0, 1) error:", err)

	// A method value binds the receiver now; a method expression takes it
	// as the first argument.
	area := r.Area
	areaOf := Rect.Area
	fmt.Fprintf(w, "  method value=%d  method expression=%d\n", area(), areaOf(sq))
}
