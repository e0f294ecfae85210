package errhandling

import (
	"fmt"
	"io"
	"strconv"
)

// ParsePort converts s to a TCP port number.
func ParsePort(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse port %q: %w", s, err)
	}
	if n < 1 || n > 65535 {
		return 0, &RangeError{Name: "port", Value: n, Min: 1, Max: 65535}
	}
	return n, nil
}

// Must panics when err is non-nil. Use it only where failure is a
// programming error, such as package-level initialization.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// OrDefault returns v, or def when err is non-nil.
func OrDefault[T any](v T, err error, def T) T {
	if err != nil {
		return def
	}
	return v
}

func demoValues(w io.Writer) {
	for _, in := range []string{"8080", "http", "70000"} {
		port, err := ParsePort(in)
		if err != nil {
			fmt.Fprintf(w, "  ParsePort(%q) error: %v\n", in, err)
			continue
		}
		fmt.Fprintf(w, "  ParsePort(%q) = %d\n", in, port)
	}

	fmt.Fprintln(w, "  Must(ParsePort(\"443\")) =", Must(ParsePort("443")))

	p, err := ParsePort("bad")
	fmt.Fprintln(w, "  OrDefault(ParsePort(\"bad\"), 80) =", OrDefault(p, err, 80))
}
