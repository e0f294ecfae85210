package menu_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/concepts/menu"
)

const sampleCatalog = `
title: Sample
run_all: Everything
topics:
  - key: one
    label: First topic
    ref: https://example.org/one
  - key: two
    label: Second topic
`

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	c, err := menu.ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)
	assert.Equal(t, "Sample", c.Title)
	assert.Equal(t, "Everything", c.RunAll)
	require.Len(t, c.Topics, 2)
	assert.Equal(t, menu.Entry{Key: "one", Label: "First topic", Ref: "https://example.org/one"}, c.Topics[0])
	assert.Empty(t, c.Topics[1].Ref)
}

func TestParseCatalogRejects(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		yaml string
	}{
		{"malformed", "title: [unterminated"},
		{"no title", "topics:\n  - key: a\n    label: A\n"},
		{"no topics", "title: T\n"},
		{"missing key", "title: T\ntopics:\n  - label: A\n"},
		{"blank label", "title: T\ntopics:\n  - key: a\n    label: '  '\n"},
		{"duplicate key", "title: T\ntopics:\n  - key: a\n    label: A\n  - key: a\n    label: B\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := menu.ParseCatalog([]byte(tc.yaml))
			require.ErrorIs(t, err, menu.ErrInvalidCatalog)
		})
	}
}

func TestBindKeepsOrderAndAppendsRunAll(t *testing.T) {
	t.Parallel()

	c, err := menu.ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	var order []string
	var hdr bytes.Buffer
	topics, err := c.Bind(map[string]menu.Action{
		"two": func() { order = append(order, "two") },
		"one": func() { order = append(order, "one") },
	}, &hdr)
	require.NoError(t, err)
	require.Len(t, topics, 3)

	assert.Equal(t, "First topic", topics[0].Label)
	assert.Equal(t, "https://example.org/one", topics[0].Ref)
	assert.Equal(t, "Second topic", topics[1].Label)
	assert.Equal(t, "Everything", topics[2].Label)

	topics[2].Action()
	assert.Equal(t, []string{"one", "two"}, order)
	assert.Contains(t, hdr.String(), "1. First topic")
	assert.Contains(t, hdr.String(), "2. Second topic")
}

func TestBindWithoutRunAll(t *testing.T) {
	t.Parallel()

	c := &menu.Catalog{Title: "T", Topics: []menu.Entry{{Key: "a", Label: "A"}}}
	topics, err := c.Bind(map[string]menu.Action{"a": func() {}}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Len(t, topics, 1)
}

func TestBindErrors(t *testing.T) {
	t.Parallel()

	c := &menu.Catalog{Title: "T", Topics: []menu.Entry{{Key: "a", Label: "A"}}}

	_, err := c.Bind(map[string]menu.Action{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, menu.ErrUnknownTopic)

	_, err = c.Bind(map[string]menu.Action{"a": nil}, &bytes.Buffer{})
	assert.ErrorIs(t, err, menu.ErrUnknownTopic)

	_, err = c.Bind(map[string]menu.Action{"a": func() {}, "b": func() {}}, &bytes.Buffer{})
	assert.ErrorIs(t, err, menu.ErrUnboundAction)
}

func TestAllCopiesTopics(t *testing.T) {
	t.Parallel()

	n := 0
	topics := []menu.Topic{{Label: "x", Action: func() { n++ }}}
	all := menu.All("all", &bytes.Buffer{}, topics)
	topics[0].Action = func() { n += 100 }

	all.Action()
	assert.Equal(t, 1, n)
}
