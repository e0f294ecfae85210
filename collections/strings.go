package collections

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Reverse reverses s rune by rune, so multi-byte characters survive.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func demoStrings(w io.Writer) {
	s := "こんにちは, Go"
	fmt.Fprintf(w, "  %q: %d bytes, %d runes\n", s, len(s), utf8.RuneCountInString(s))

	// Slicing is by byte offset; cutting inside a rune gives invalid UTF-8.
	fmt.Fprintf(w, "  s[:3]=%q  valid=%t   s[:2] valid=%t\n", s[:3], utf8.ValidString(s[:3]), utf8.ValidString(s[:2]))

	// range decodes runes and yields their byte offsets.
	var offsets []int
	for i := range "héllo" {
		offsets = append(offsets, i)
	}
	fmt.Fprintln(w, "  byte offsets of runes in \"héllo\":", offsets)

	fmt.Fprintf(w, "  Reverse(%q) = %q\n", "héllo", Reverse("héllo"))
	fmt.Fprintf(w, "  Truncate(s, 5) = %q\n", Truncate(s, 5))

	// Concatenation in a loop copies each time; Builder grows one buffer.
	var b strings.Builder
	for i := range 3 {
		fmt.Fprintf(&b, "tic-%d ", i)
	}
	fmt.Fprintf(w, "  Builder: %q\n", strings.TrimSpace(b.String()))

	csv := "ana, bea ,  carl"
	fields := strings.Split(csv, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	fmt.Fprintf(w, "  Split+TrimSpace: %q\n", fields)
	fmt.Fprintln(w, "  Fields(\"  a  b c \"):", len(strings.Fields("  a  b c ")), "words")
	fmt.Fprintln(w, "  ToUpper / Repeat / Replace:", strings.ToUpper("go"), strings.Repeat("ab", 3), strings.ReplaceAll("a-b-c", "-", "+"))
	fmt.Fprintln(w, "  HasPrefix(\"gopher\", \"go\"):", strings.HasPrefix("gopher", "go"))
}
