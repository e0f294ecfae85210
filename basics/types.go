package basics

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf8"
)

// demoTypes covers the numeric family, explicit conversions and the
// byte/rune split inside strings.
func demoTypes(w io.Writer) {
	var i8 int8 = math.MaxInt8
	var u8 uint8 = math.MaxUint8
	fmt.Fprintf(w, "  int8 max=%d  uint8 max=%d  int64 max=%d\n", i8, u8, int64(math.MaxInt64))

	// Overflow wraps around at run time; the compiler rejects it for constants.
	i8++
	fmt.Fprintln(w, "  int8 max + 1 wraps to:", i8)

	// No implicit conversions, even between int and int64.
	n := 42
	f := float64(n) / 5
	back := int(f) // truncates toward zero
	fmt.Fprintf(w, "  float64(42)/5 = %.1f  int(...) = %d\n", f, back)

	// Numbers and strings convert through strconv, not through string(int).
	s := strconv.Itoa(n)
	parsed, err := strconv.Atoi("128")
	fmt.Fprintf(w, "  strconv.Itoa(42)=%q  Atoi(\"128\")=%d err=%v\n", s, parsed, err)
	_, err = strconv.Atoi("12a")
	fmt.Fprintln(w, "  Atoi(\"12a\") error:", err)

	// A string is a read-only slice of bytes; len counts bytes, not characters.
	word := "héllo"
	fmt.Fprintf(w, "  %q: len=%d bytes, %d runes\n", word, len(word), utf8.RuneCountInString(word))
	fmt.Fprintf(w, "  word[1] = %d (a byte), []rune(word)[1] = %q\n", word[1], []rune(word)[1])

	// Booleans don't convert to or from numbers.
	t := n > 40 && n%2 == 0
	fmt.Fprintln(w, "  42 > 40 && even:", t)
}
