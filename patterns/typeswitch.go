package patterns

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Inspect describes v according to its dynamic type.
func Inspect(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case int, int64:
		// With several types in one case x stays an interface.
		return fmt.Sprintf("integer %v", x)
	case string:
		return fmt.Sprintf("string of %d bytes", len(x))
	case []int:
		return fmt.Sprintf("slice of %d ints", len(x))
	case error:
		return "error: " + x.Error()
	case fmt.Stringer:
		return "stringer: " + x.String()
	default:
		return fmt.Sprintf("other %T", x)
	}
}

type celsius float64

func (c celsius) String() string { return fmt.Sprintf("%.1f°C", float64(c)) }

func demoTypeSwitch(w io.Writer) {
	values := []any{nil, 42, int64(7), "gopher", []int{1, 2}, errors.New("boom"), celsius(21.5), 3.14}
	for _, v := range values {
		fmt.Fprintf(w, "  %-10s → %s\n", strings.TrimSpace(fmt.Sprintf("%v", v)), Inspect(v))
	}
}
