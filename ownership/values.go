package ownership

import (
	"fmt"
	"io"
)

// Account is a plain struct; copying it copies every field.
type Account struct {
	Owner   string
	Balance int
}

// depositCopy receives its own copy: the caller never sees the change.
func depositCopy(a Account, amount int) Account {
	a.Balance += amount
	return a
}

func demoValues(w io.Writer) {
	a := Account{Owner: "ana", Balance: 100}
	b := a // full copy
	b.Balance = 0
	fmt.Fprintf(w, "  a=%+v  b=%+v  (b is an independent copy)\n", a, b)

	c := depositCopy(a, 50)
	fmt.Fprintf(w, "  depositCopy: a.Balance=%d  returned=%d\n", a.Balance, c.Balance)

	// Arrays are values too, unlike slices.
	arr := [3]int{1, 2, 3}
	arr2 := arr
	arr2[0] = 99
	fmt.Fprintf(w, "  arrays copy: arr=%v arr2=%v\n", arr, arr2)

	// Strings are immutable, so sharing their bytes is always safe.
	s1 := "hello"
	s2 := s1
	s2 += " world"
	fmt.Fprintf(w, "  strings: s1=%q s2=%q\n", s1, s2)
}
