package patterns_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/concepts/patterns"
)

func TestGrade(t *testing.T) {
	t.Parallel()

	cases := map[int]string{100: "A", 90: "A", 89: "B", 70: "C", 69: "F", -1: "invalid", 101: "invalid"}
	for score, want := range cases {
		assert.Equal(t, want, patterns.Grade(score), "Grade(%d)", score)
	}
}

func TestStagesFallthrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"parse", "check", "emit"}, patterns.Stages(1))
	assert.Equal(t, []string{"check", "emit"}, patterns.Stages(2))
	assert.Nil(t, patterns.Stages(4))
}

func TestInspect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nil", patterns.Inspect(nil))
	assert.Equal(t, "integer 42", patterns.Inspect(42))
	assert.Equal(t, "string of 2 bytes", patterns.Inspect("go"))
	assert.Equal(t, "slice of 3 ints", patterns.Inspect([]int{1, 2, 3}))
	assert.Equal(t, "error: x", patterns.Inspect(errors.New("x")))
	assert.Equal(t, "other float64", patterns.Inspect(1.5))
}

func TestWhereAndAgeGroup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "origin", patterns.Where(patterns.Point{}))
	assert.Equal(t, "on the x axis at 5", patterns.Where(patterns.Point{X: 5}))
	assert.Equal(t, "on the diagonal", patterns.Where(patterns.Point{X: 4, Y: 4}))
	assert.Equal(t, "teen (15)", patterns.AgeGroup(15))
	assert.Equal(t, "invalid", patterns.AgeGroup(-1))
}

func TestMinMaxAndLookup(t *testing.T) {
	t.Parallel()

	lo, hi := patterns.MinMax([]int{4, 9, -2, 7})
	assert.Equal(t, -2, lo)
	assert.Equal(t, 9, hi)

	ports := map[string]int{"zero": 0}
	assert.Equal(t, "zero=0", patterns.Lookup(ports, "zero"))
	assert.Equal(t, "ssh not configured", patterns.Lookup(ports, "ssh"))
}

func TestRunOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	patterns.Run(&buf)
	out := buf.String()

	assert.Contains(t, out, "stringer: 21.5°C")
	assert.Contains(t, out, "closed channel: (5, true) then (0, false)")
	assert.Contains(t, out, "switch with init: y = 16 > 10")
	assert.Contains(t, out, `key="user" value="ana" found=true`)
}
