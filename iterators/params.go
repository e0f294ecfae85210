package iterators

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Retry calls fn up to attempts times until it returns nil, and returns the
// last error.
func Retry(attempts int, fn func(try int) error) error {
	var err error
	for try := 1; try <= attempts; try++ {
		if err = fn(try); err == nil {
			return nil
		}
	}
	return err
}

// Server is configured through functional options.
type Server struct {
	Addr    string
	Timeout time.Duration
	Verbose bool
}

// Option mutates a Server under construction.
type Option func(*Server)

func WithTimeout(d time.Duration) Option { return func(s *Server) { s.Timeout = d } }
func WithVerbose() Option                { return func(s *Server) { s.Verbose = true } }

// NewServer applies opts over defaults.
func NewServer(addr string, opts ...Option) *Server {
	s := &Server{Addr: addr, Timeout: 30 * time.Second}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compose returns f after g.
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C { return f(g(a)) }
}

func demoParams(w io.Writer) {
	err := Retry(3, func(try int) error {
		fmt.Fprintf(w, "  attempt %d\n", try)
		if try < 2 {
			return fmt.Errorf("try %d failed", try)
		}
		return nil
	})
	fmt.Fprintln(w, "  Retry result:", err)

	def := NewServer(":8080")
	custom := NewServer(":9090", WithTimeout(5*time.Second), WithVerbose())
	fmt.Fprintf(w, "  defaults: %+v\n", *def)
	fmt.Fprintf(w, "  options:  %+v\n", *custom)

	shout := Compose(strings.ToUpper, strings.TrimSpace)
	fmt.Fprintf(w, "  Compose(ToUpper, TrimSpace)(\"  go \") = %q\n", shout("  go "))

	fmt.Fprintln(w, "  strings.Map drops vowels:", strings.Map(func(r rune) rune {
		if strings.ContainsRune("aeiou", r) {
			return -1
		}
		return r
	}, "iterator"))
}
