package structs

import (
	"fmt"
	"io"
)

// Animal is embedded by Dog; its fields and methods get promoted.
type Animal struct {
	Name string
	Legs int
}

func (a Animal) Describe() string { return fmt.Sprintf("%s has %d legs", a.Name, a.Legs) }
func (a Animal) Sound() string    { return "..." }

// Dog embeds Animal and shadows Sound.
type Dog struct {
	Animal
	Breed string
}

func (d Dog) Sound() string { return "woof" }

func demoEmbedding(w io.Writer) {
	d := Dog{Animal: Animal{Name: "rex", Legs: 4}, Breed: "beagle"}

	fmt.Fprintln(w, "  promoted field d.Name:", d.Name)
	fmt.Fprintln(w, "  promoted method:", d.Describe())
	fmt.Fprintf(w, "  d.Sound()=%q  d.Animal.Sound()=%q\n", d.Sound(), d.Animal.Sound())

	// Embedding is composition: a Dog is not an Animal.
	var a Animal = d.Animal
	fmt.Fprintf(w, "  explicit d.Animal: %+v\n", a)
}
