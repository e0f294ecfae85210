package lifetimes_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/concepts/lifetimes"
)

func TestDeferOrderAndNamedResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"2", "1", "0"}, lifetimes.Order())
	assert.Equal(t, 42, lifetimes.Double(21))
}

func TestTrace(t *testing.T) {
	t.Parallel()

	var log []string
	func() {
		defer lifetimes.Trace(&log, "f")()
		log = append(log, "body")
	}()
	assert.Equal(t, []string{"enter f", "body", "leave f"}, log)
}

func TestLoopResources(t *testing.T) {
	t.Parallel()

	leaky := &lifetimes.Pool{}
	lifetimes.ProcessDeferInLoop(leaky, 4)
	assert.Equal(t, 4, leaky.Peak())
	assert.Zero(t, leaky.OpenCount())

	scoped := &lifetimes.Pool{}
	lifetimes.ProcessScoped(scoped, 4)
	assert.Equal(t, 1, scoped.Peak())
	assert.Zero(t, scoped.OpenCount())
}

func TestViews(t *testing.T) {
	t.Parallel()

	payload := []byte("HEADbody")
	view := lifetimes.HeaderView(payload, 4)
	owned := lifetimes.HeaderCopy(payload, 4)
	payload[0] = 'h'

	assert.Equal(t, "hEAD", string(view))
	assert.Equal(t, "HEAD", string(owned))
	assert.Equal(t, 4, cap(view))

	assert.Equal(t, "abc", lifetimes.Longest("abc", "de"))
	assert.Equal(t, "Hi", lifetimes.FirstSentence("Hi. There.").Part)
}

func TestBufferAndGenerator(t *testing.T) {
	t.Parallel()

	b := lifetimes.NewBuffer(2)
	fmt.Fprintf(b, "%d-%d", 1, 2)
	assert.Equal(t, "1-2", b.String())

	g := lifetimes.Generator()
	g()
	assert.Equal(t, 2, g())
}

func TestRunOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lifetimes.Run(&buf)
	out := buf.String()

	assert.Contains(t, out, "inner block: x=2 y=3")
	assert.Contains(t, out, "outer block: x = 1")
	assert.Contains(t, out, "if-scoped v=1, x updated to 42")
	assert.Contains(t, out, "  enter outer\n  enter inner\n  work\n  leave inner\n  leave outer\n")
	assert.Contains(t, out, "deferred argument captured at defer time: x = 1")
	assert.Contains(t, out, "defer in loop:   peak open=5, open after return=0")
	assert.Contains(t, out, "helper per item: peak open=1, open after return=0")
	assert.Contains(t, out, `view="HDR1" cap=4 (pins 1 MiB)  copy="HDR1" len=4`)
	assert.Contains(t, out, `after payload[0]='h': view="hDR1" copy="HDR1"`)
}
