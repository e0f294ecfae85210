package structs

import (
	"fmt"
	"io"
)

// User is a named struct type.
type User struct {
	Name   string
	Email  string
	Active bool
	Logins int
}

// Point is small and comparable, so == works on it.
type Point struct{ X, Y int }

// Marker carries no data; its methods are all that matters.
type Marker struct{}

func (Marker) Kind() string { return "marker" }

func demoStructs(w io.Writer) {
	u := User{Name: "ana", Email: "ana@example.com", Active: true}
	fmt.Fprintf(w, "  keyed literal: %+v\n", u)

	// Omitted fields get their zero value.
	guest := User{Name: "guest"}
	fmt.Fprintf(w, "  partial literal: %+v\n", guest)

	// Copy-and-modify, the Go spelling of struct update syntax.
	u2 := u
	u2.Email = "ana@work.example"
	fmt.Fprintf(w, "  copy-and-modify: u.Email=%q u2.Email=%q\n", u.Email, u2.Email)

	p, q := Point{1, 2}, Point{1, 2}
	fmt.Fprintln(w, "  Point{1,2} == Point{1,2}:", p == q)

	// Anonymous struct for a one-off shape.
	cfg := struct {
		Host string
		Port int
	}{"localhost", 8080}
	fmt.Fprintf(w, "  anonymous struct: %s:%d\n", cfg.Host, cfg.Port)

	var m Marker
	fmt.Fprintf(w, "  empty struct: Kind()=%q\n", m.Kind())
}
