package ownership

import (
	"fmt"
	"io"
)

// Deposit mutates the account the pointer refers to.
func Deposit(a *Account, amount int) {
	a.Balance += amount // auto-dereference: same as (*a).Balance
}

// Rename has a pointer receiver, so it changes the caller's value.
func (a *Account) Rename(owner string) { a.Owner = owner }

// Summary has a value receiver and works on a copy.
func (a Account) Summary() string { return fmt.Sprintf("%s:%d", a.Owner, a.Balance) }

func demoPointers(w io.Writer) {
	acc := Account{Owner: "ana", Balance: 100}
	Deposit(&acc, 25)
	fmt.Fprintln(w, "  after Deposit(&acc, 25):", acc.Summary())

	// The method set of an addressable value includes pointer methods; Go
	// takes &acc for us.
	acc.Rename("bea")
	fmt.Fprintln(w, "  after acc.Rename(\"bea\"):", acc.Summary())

	p := &acc
	q := p // two pointers, one Account
	q.Balance = 0
	fmt.Fprintf(w, "  p == q: %t  acc.Balance via p: %d\n", p == q, p.Balance)

	// new(T) allocates a zeroed T and returns *T.
	n := new(int)
	*n = 42
	fmt.Fprintln(w, "  new(int) then *n = 42:", *n)

	var nilPtr *Account
	fmt.Fprintln(w, "  zero value of *Account is nil:", nilPtr == nil)
}
