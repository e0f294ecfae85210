package collections

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"unicode"
)

// WordCount counts case-folded words, ignoring punctuation.
func WordCount(text string) map[string]int {
	counts := make(map[string]int)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	for _, word := range words {
		counts[word]++ // missing keys read as 0
	}
	return counts
}

// TopWords returns the n most frequent words, ties broken alphabetically.
func TopWords(counts map[string]int, n int) []string {
	keys := slices.Collect(maps.Keys(counts))
	slices.SortFunc(keys, func(a, b string) int {
		if counts[a] != counts[b] {
			return counts[b] - counts[a]
		}
		return strings.Compare(a, b)
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func demoMaps(w io.Writer) {
	scores := map[string]int{"blue": 10, "yellow": 50}
	scores["red"] = 25
	scores["blue"] = 15 // overwrite

	if s, ok := scores["yellow"]; ok {
		fmt.Fprintln(w, "  yellow =", s)
	}
	delete(scores, "yellow")
	delete(scores, "absent") // no-op

	// Map iteration order is randomized; sort keys for stable output.
	for _, k := range slices.Sorted(maps.Keys(scores)) {
		fmt.Fprintf(w, "  %-5s = %d\n", k, scores[k])
	}

	// Insert only if absent.
	if _, ok := scores["green"]; !ok {
		scores["green"] = 1
	}
	fmt.Fprintln(w, "  len after insert-if-absent:", len(scores))

	// Nested maps need their inner map created before writing.
	teams := map[string]map[string]int{}
	for _, e := range []struct{ team, who string }{{"a", "ana"}, {"a", "bea"}, {"b", "carl"}} {
		if teams[e.team] == nil {
			teams[e.team] = map[string]int{}
		}
		teams[e.team][e.who]++
	}
	fmt.Fprintln(w, "  nested map sizes: a =", len(teams["a"]), " b =", len(teams["b"]))

	// Writing to a nil map panics; reading is fine.
	var nilMap map[string]int
	fmt.Fprintln(w, "  read from nil map:", nilMap["x"])
}

func demoWordCount(w io.Writer) {
	text := "the quick brown fox jumps over the lazy dog; the dog sleeps"
	counts := WordCount(text)
	fmt.Fprintf(w, "  %d distinct words\n", len(counts))
	for _, word := range TopWords(counts, 3) {
		fmt.Fprintf(w, "  %-5s %d\n", word, counts[word])
	}
}
