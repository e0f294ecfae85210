package errhandling

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"testing/fstest"
)

// ReadUsername reads the first line of path from fsys. Every layer wraps the
// error it got with its own context.
func ReadUsername(fsys fs.FS, path string) (string, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("read username: %w", err)
	}
	name, _, _ := strings.Cut(string(data), "\n")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("read username from %s: %w", path, ErrNotFound)
	}
	return name, nil
}

// Greet calls ReadUsername and adds its own layer of context.
func Greet(fsys fs.FS, path string) (string, error) {
	name, err := ReadUsername(fsys, path)
	if err != nil {
		return "", fmt.Errorf("greet: %w", err)
	}
	return "hello, " + name, nil
}

func demoPropagation(w io.Writer) {
	fsys := fstest.MapFS{
		"user.txt":  {Data: []byte("ana\nignored\n")},
		"empty.txt": {Data: []byte("\n")},
	}

	for _, path := range []string{"user.txt", "empty.txt", "missing.txt"} {
		msg, err := Greet(fsys, path)
		if err != nil {
			fmt.Fprintf(w, "  %-11s → %v\n", path, err)
			fmt.Fprintf(w, "  %-11s   is fs.ErrNotExist=%t is ErrNotFound=%t\n", "",
				errors.Is(err, fs.ErrNotExist), errors.Is(err, ErrNotFound))
			continue
		}
		fmt.Fprintf(w, "  %-11s → %s\n", path, msg)
	}

	// %v reads the same but cuts the chain.
	opaque := fmt.Errorf("greet: %v", ErrNotFound)
	fmt.Fprintf(w, "  with %%v instead of %%w, errors.Is = %t\n", errors.Is(opaque, ErrNotFound))
}
