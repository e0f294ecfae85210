package errhandling

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

var users = map[int]string{1: "ana", 2: "bea"}

// FindUser looks a user up by id. Unknown ids wrap ErrNotFound; id 0 is
// reserved and yields ErrUnauthorized.
func FindUser(id int) (string, error) {
	if id == 0 {
		return "", ErrUnauthorized
	}
	name, ok := users[id]
	if !ok {
		return "", fmt.Errorf("find user %d: %w", id, ErrNotFound)
	}
	return name, nil
}

func demoSentinel(w io.Writer) {
	for _, id := range []int{1, 0, 42} {
		name, err := FindUser(id)
		switch {
		case err == nil:
			fmt.Fprintf(w, "  id=%d → %s\n", id, name)
		case errors.Is(err, ErrNotFound):
			fmt.Fprintf(w, "  id=%d → not found (%v)\n", id, err)
		case errors.Is(err, ErrUnauthorized):
			fmt.Fprintf(w, "  id=%d → unauthorized\n", id)
		}
	}

	// == only matches the exact value; errors.Is follows the wrap chain.
	_, err := FindUser(42)
	fmt.Fprintf(w, "  err == ErrNotFound: %t   errors.Is: %t\n", err == ErrNotFound, errors.Is(err, ErrNotFound))
}
