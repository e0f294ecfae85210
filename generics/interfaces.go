package generics

import (
	"fmt"
	"io"
	"strings"
)

// Summarizer is implemented by anything with a Summary method; no
// "implements" clause is needed.
type Summarizer interface {
	Summary() string
}

// Author is a separate capability.
type Author interface {
	AuthorName() string
}

// Post composes both interfaces, so a Post must provide both methods.
type Post interface {
	Summarizer
	Author
}

type Article struct {
	Title, Byline, Body string
}

func (a Article) Summary() string    { return fmt.Sprintf("%s, by %s", a.Title, a.Byline) }
func (a Article) AuthorName() string { return a.Byline }

type Tweet struct {
	User, Text string
	Reposts    int
}

func (t Tweet) Summary() string    { return fmt.Sprintf("@%s: %s", t.User, t.Text) }
func (t Tweet) AuthorName() string { return "@" + t.User }

// Headline depends only on the behavior it needs.
func Headline(s Summarizer) string { return "Breaking! " + s.Summary() }

// Preview truncates the summary of a post. It gives every Summarizer a
// shared default instead of a per-type method.
func Preview(s Summarizer, n int) string {
	sum := s.Summary()
	if len(sum) <= n {
		return sum
	}
	return strings.TrimSpace(sum[:n]) + "..."
}

func demoInterfaces(w io.Writer) {
	posts := []Post{
		Article{Title: "Go 1.23 released", Byline: "gopher", Body: "range over func"},
		Tweet{User: "rob", Text: "less is exponentially more", Reposts: 12},
	}
	for _, p := range posts {
		fmt.Fprintf(w, "  %s | by %s\n", Headline(p), p.AuthorName())
		fmt.Fprintln(w, "  preview:", Preview(p, 12))
	}

	// Type assertion recovers the concrete type when you need it.
	var s Summarizer = posts[1]
	if t, ok := s.(Tweet); ok {
		fmt.Fprintln(w, "  asserted Tweet, reposts:", t.Reposts)
	}

	// A compile-time check that a type satisfies an interface.
	var _ Post = Article{}

	// A nil interface differs from an interface holding a nil pointer.
	var nilSum Summarizer
	var nilArticle *Article
	var holding Summarizer = nilArticle
	fmt.Fprintf(w, "  nil interface == nil: %t, interface holding (*Article)(nil) == nil: %t\n",
		nilSum == nil, holding == nil)
}
