package generics

import (
	"fmt"
	"io"
	"strings"
)

// Labeled is a method constraint usable as a type parameter bound.
type Labeled interface {
	Label() string
}

// Celsius and Env both satisfy Labeled.
type Celsius float64

func (c Celsius) Label() string { return fmt.Sprintf("%.1f°C", float64(c)) }

type Env string

func (e Env) Label() string { return strings.ToUpper(string(e)) }

// JoinLabels works for a slice of any single Labeled type, without boxing
// each element into an interface.
func JoinLabels[T Labeled](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.Label()
	}
	return strings.Join(parts, sep)
}

// NumericLabel combines a type-set with a method: T must be numeric and
// have Label.
type NumericLabel interface {
	~float64
	Labeled
}

// Hottest returns the label of the largest reading.
func Hottest[T NumericLabel](xs []T) string {
	best := xs[0]
	for _, x := range xs[1:] {
		if x > best {
			best = x
		}
	}
	return best.Label()
}

// Container has an element type chosen by the implementation, like an
// associated type.
type Container[T any] interface {
	Get(i int) (T, bool)
	Len() int
}

type Ring[T any] struct{ items []T }

func (r Ring[T]) Len() int { return len(r.items) }

// Get wraps the index around the ring.
func (r Ring[T]) Get(i int) (T, bool) {
	var zero T
	if len(r.items) == 0 {
		return zero, false
	}
	i %= len(r.items)
	if i < 0 {
		i += len(r.items)
	}
	return r.items[i], true
}

// Last returns the final element of any Container.
func Last[T any](c Container[T]) (T, bool) { return c.Get(c.Len() - 1) }

func demoBounds(w io.Writer) {
	temps := []Celsius{21.5, 30.3, 18}
	fmt.Fprintln(w, "  JoinLabels(temps)  =", JoinLabels(temps, ", "))
	fmt.Fprintln(w, "  JoinLabels(envs)   =", JoinLabels([]Env{"dev", "prod"}, "|"))
	fmt.Fprintln(w, "  Hottest(temps)     =", Hottest(temps))

	r := Ring[string]{items: []string{"north", "east", "south", "west"}}
	v, _ := r.Get(5)
	last, _ := Last[string](r)
	fmt.Fprintf(w, "  Ring.Get(5) = %s   Last(ring) = %s\n", v, last)
}
