package errhandling

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Signup is user input to validate.
type Signup struct {
	Username string
	Email    string
	Age      int
}

// Validate checks every field and returns all failures joined, or nil.
func (s Signup) Validate() error {
	var errs []error
	if len(s.Username) < 3 {
		errs = append(errs, &FieldError{Field: "username", Err: errors.New("must be at least 3 characters")})
	}
	if !strings.Contains(s.Email, "@") {
		errs = append(errs, &FieldError{Field: "email", Err: errors.New("must contain @")})
	}
	if s.Age < 13 || s.Age > 130 {
		errs = append(errs, &FieldError{Field: "age", Err: &RangeError{Name: "age", Value: s.Age, Min: 13, Max: 130}})
	}
	return errors.Join(errs...)
}

// Fields lists the names of the fields that failed in err.
func Fields(err error) []string {
	var out []string
	var walk func(error)
	walk = func(e error) {
		if fe, ok := e.(*FieldError); ok {
			out = append(out, fe.Field)
			return
		}
		if j, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range j.Unwrap() {
				walk(inner)
			}
		}
	}
	if err != nil {
		walk(err)
	}
	return out
}

func demoValidation(w io.Writer) {
	good := Signup{Username: "ana", Email: "ana@example.com", Age: 30}
	fmt.Fprintln(w, "  valid signup →", good.Validate())

	bad := Signup{Username: "x", Email: "nowhere", Age: 7}
	err := bad.Validate()
	fmt.Fprintln(w, "  invalid signup, all failures at once:")
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintln(w, "   -", line)
	}
	fmt.Fprintln(w, "  failed fields:", Fields(err))

	var re *RangeError
	fmt.Fprintln(w, "  errors.As finds the age *RangeError:", errors.As(err, &re))
}
