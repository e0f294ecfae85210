package lifetimes

import (
	"fmt"
	"io"
)

// Resource stands in for a file or connection.
type Resource struct {
	ID     int
	closed bool
	pool   *Pool
}

func (r *Resource) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.pool.open--
	return nil
}

// Pool hands out resources and tracks how many are open at once.
type Pool struct {
	open, peak int
}

func (p *Pool) Open(id int) *Resource {
	p.open++
	p.peak = max(p.peak, p.open)
	return &Resource{ID: id, pool: p}
}

// Peak is the largest number of resources held simultaneously.
func (p *Pool) Peak() int { return p.peak }

// OpenCount is the number of resources still open.
func (p *Pool) OpenCount() int { return p.open }

// ProcessDeferInLoop defers inside the loop: nothing closes until return.
func ProcessDeferInLoop(p *Pool, n int) {
	for i := range n {
		r := p.Open(i)
		defer r.Close()
	}
}

// ProcessScoped moves the body into a helper so each defer runs per item.
func ProcessScoped(p *Pool, n int) {
	for i := range n {
		handle(p, i)
	}
}

func handle(p *Pool, id int) {
	r := p.Open(id)
	defer r.Close()
}

func demoLoopResources(w io.Writer) {
	leaky := &Pool{}
	ProcessDeferInLoop(leaky, 5)
	fmt.Fprintf(w, "  defer in loop:   peak open=%d, open after return=%d\n", leaky.Peak(), leaky.OpenCount())

	scoped := &Pool{}
	ProcessScoped(scoped, 5)
	fmt.Fprintf(w, "  helper per item: peak open=%d, open after return=%d\n", scoped.Peak(), scoped.OpenCount())
}
