package patterns

import (
	"fmt"
	"io"
)

// DayKind groups weekdays using case lists.
func DayKind(day string) string {
	switch day {
	case "sat", "sun":
		return "weekend"
	case "mon", "tue", "wed", "thu", "fri":
		return "weekday"
	default:
		return "not a day"
	}
}

// Grade maps a score to a letter with a tagless switch over ranges.
func Grade(score int) string {
	switch {
	case score < 0 || score > 100:
		return "invalid"
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	default:
		return "F"
	}
}

// Stages lists the stages from the given one to the end. fallthrough
// continues into the next case without testing it.
func Stages(from int) []string {
	var out []string
	switch from {
	case 1:
		out = append(out, "parse")
		fallthrough
	case 2:
		out = append(out, "check")
		fallthrough
	case 3:
		out = append(out, "emit")
	}
	return out
}

func demoSwitch(w io.Writer) {
	for _, d := range []string{"sat", "wed", "xyz"} {
		fmt.Fprintf(w, "  DayKind(%q) = %s\n", d, DayKind(d))
	}
	for _, s := range []int{95, 81, 70, 12, 101} {
		fmt.Fprintf(w, "  Grade(%d) = %s\n", s, Grade(s))
	}
	fmt.Fprintln(w, "  Stages(1) with fallthrough:", Stages(1))
	fmt.Fprintln(w, "  Stages(3):", Stages(3))

	// Cases need not be constants and are evaluated top to bottom.
	x := 8
	switch y := x * 2; {
	case y > 20:
		fmt.Fprintln(w, "  y > 20")
	case y > 10:
		fmt.Fprintln(w, "  switch with init: y =", y, "> 10")
	}
}
