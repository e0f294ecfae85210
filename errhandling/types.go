package errhandling

import (
	"errors"
	"fmt"
	"io"
)

// RangeError reports a numeric value outside [Min, Max].
type RangeError struct {
	Name     string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Name, e.Value, e.Min, e.Max)
}

// FieldError ties a failure to an input field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }
func (e *FieldError) Unwrap() error { return e.Err }

func demoCustomType(w io.Writer) {
	_, err := ParsePort("99999")

	var re *RangeError
	if errors.As(err, &re) {
		fmt.Fprintf(w, "  errors.As → *RangeError name=%s value=%d max=%d\n", re.Name, re.Value, re.Max)
	}

	// As still finds it when it sits deeper in the chain.
	wrapped := fmt.Errorf("load config: %w", &FieldError{Field: "listen", Err: err})
	fmt.Fprintln(w, "  wrapped:", wrapped)

	var fe *FieldError
	if errors.As(wrapped, &fe) && errors.As(wrapped, &re) {
		fmt.Fprintf(w, "  field=%q and range max=%d, both reachable\n", fe.Field, re.Max)
	}

	// Matching on the kind of failure, like matching an error enum.
	for _, in := range []string{"", "x1", "0"} {
		_, err := ParsePort(in)
		fmt.Fprintf(w, "  ParsePort(%q): %s\n", in, Kind(err))
	}
}

// Kind classifies a ParsePort error.
func Kind(err error) string {
	var re *RangeError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &re):
		return "out of range"
	default:
		return "not a number"
	}
}
