package structs

import (
	"fmt"
	"io"
)

// Coin is an enumeration; the zero value is deliberately invalid.
type Coin int

const (
	CoinUnknown Coin = iota
	Penny
	Nickel
	Dime
	Quarter
)

var coinNames = [...]string{"unknown", "penny", "nickel", "dime", "quarter"}

func (c Coin) String() string {
	if c < 0 || int(c) >= len(coinNames) {
		return fmt.Sprintf("Coin(%d)", int(c))
	}
	return coinNames[c]
}

// Cents returns the coin's value in cents.
func (c Coin) Cents() int {
	switch c {
	case Penny:
		return 1
	case Nickel:
		return 5
	case Dime:
		return 10
	case Quarter:
		return 25
	}
	return 0
}

// Valid reports whether c is one of the declared coins.
func (c Coin) Valid() bool { return c > CoinUnknown && c <= Quarter }

// Perm is a bit-flag enum.
type Perm uint8

const (
	PermRead Perm = 1 << iota
	PermWrite
	PermExec
)

func (p Perm) Has(flag Perm) bool { return p&flag != 0 }

func demoEnums(w io.Writer) {
	for _, c := range []Coin{Penny, Nickel, Dime, Quarter} {
		fmt.Fprintf(w, "  %-7v = %2d cents\n", c, c.Cents())
	}

	var zero Coin
	fmt.Fprintf(w, "  zero value %v valid=%t\n", zero, zero.Valid())
	fmt.Fprintf(w, "  out of range: %v valid=%t\n", Coin(42), Coin(42).Valid())

	p := PermRead | PermWrite
	fmt.Fprintf(w, "  flags %03b: read=%t write=%t exec=%t\n", p, p.Has(PermRead), p.Has(PermWrite), p.Has(PermExec))
}
