package patterns

import (
	"fmt"
	"io"
	"strconv"
)

// Lookup returns the port for name, or an explanation when it is missing.
func Lookup(ports map[string]int, name string) string {
	if p, ok := ports[name]; ok {
		return name + "=" + strconv.Itoa(p)
	}
	return name + " not configured"
}

func demoCommaOK(w io.Writer) {
	ports := map[string]int{"http": 80, "https": 443, "zero": 0}
	for _, n := range []string{"https", "zero", "ssh"} {
		fmt.Fprintln(w, " ", Lookup(ports, n))
	}
	// Without ok the zero value hides the difference.
	fmt.Fprintf(w, "  ports[\"zero\"]=%d ports[\"ssh\"]=%d (indistinguishable)\n", ports["zero"], ports["ssh"])

	var v any = "text"
	if s, ok := v.(string); ok {
		fmt.Fprintf(w, "  v.(string) ok: %q\n", s)
	}
	if _, ok := v.(int); !ok {
		fmt.Fprintln(w, "  v.(int) ok=false, no panic")
	}

	// Receiving from a closed channel yields the zero value and ok=false.
	ch := make(chan int, 1)
	ch <- 5
	close(ch)
	a, ok1 := <-ch
	b, ok2 := <-ch
	fmt.Fprintf(w, "  closed channel: (%d, %t) then (%d, %t)\n", a, ok1, b, ok2)
}
