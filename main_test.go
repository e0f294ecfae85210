package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/concepts/menu"
)

func TestEmbeddedCatalogBindsEveryTopic(t *testing.T) {
	var out bytes.Buffer
	topics, title, err := loadTopics(catalogYAML, &out)
	require.NoError(t, err)

	assert.NotEmpty(t, title)
	require.Len(t, topics, 10) // nine topics plus "run every topic"
	assert.Equal(t, "Run every topic", topics[9].Label)
	for _, tp := range topics[:9] {
		assert.NotEmpty(t, tp.Ref, tp.Label)
	}
}

func TestSessionRunsSelectedTopic(t *testing.T) {
	var out bytes.Buffer
	topics, title, err := loadTopics(catalogYAML, &out)
	require.NoError(t, err)

	d := menu.New(topics, menu.Config{In: strings.NewReader("7\nnope\nq\n"), Out: &out, Title: title})
	require.NoError(t, d.Run())

	assert.Equal(t, menu.Stats{Invoked: 1, Invalid: 1}, d.Stats())
	assert.Contains(t, out.String(), "Reference: https://go.dev/blog/slices-intro")
	assert.Contains(t, out.String(), "━━━ Maps — insert, lookup, delete, ordered iteration ━━━")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunEveryTopic(t *testing.T) {
	var out bytes.Buffer
	topics, _, err := loadTopics(catalogYAML, &out)
	require.NoError(t, err)

	d := menu.New(topics, menu.Config{In: strings.NewReader("10\n"), Out: &out})
	require.NoError(t, d.Run())

	for i, tp := range topics[:9] {
		assert.Contains(t, out.String(), "══ "+string(rune('1'+i))+". "+tp.Label+" ══", tp.Label)
	}
}

type brokenInput struct{}

func (brokenInput) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		in   io.Reader
		want int
	}{
		{name: "quit", in: strings.NewReader("2\n0\n"), want: 0},
		{name: "q after invalid", in: strings.NewReader("abc\nq\n"), want: 0},
		{name: "end of input", in: strings.NewReader(""), want: 0},
		{name: "oversized line then eof", in: strings.NewReader(strings.Repeat("9", 70000)), want: 0},
		{name: "verbose", args: []string{"-v"}, in: strings.NewReader("0\n"), want: 0},
		{name: "read error", in: brokenInput{}, want: 1},
		{name: "unknown flag", args: []string{"-nope"}, in: strings.NewReader("0\n"), want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			assert.Equal(t, tt.want, run(tt.args, tt.in, &out, &errOut), errOut.String())
		})
	}
}

func TestVerboseLogsToErrOut(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, 0, run([]string{"-v"}, strings.NewReader("1\n0\n"), &out, &errOut))

	assert.Contains(t, errOut.String(), "[main] loaded 10 topics")
	assert.Contains(t, errOut.String(), "[menu] invoke topic 1")
	assert.Contains(t, errOut.String(), "[main] done: invoked=1 invalid=0")
	assert.NotContains(t, out.String(), "[menu]")
}
