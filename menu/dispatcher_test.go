package menu_test

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/marcodamonte/concepts/menu"
)

// DispatcherSuite drives the menu loop with scripted input over three
// counting topics.
type DispatcherSuite struct {
	suite.Suite
	calls  []int
	topics []menu.Topic
	out    *bytes.Buffer
}

func (s *DispatcherSuite) SetupTest() {
	s.calls = make([]int, 3)
	s.out = &bytes.Buffer{}
	s.topics = nil
	for i, label := range []string{"Alpha", "Beta", "Gamma"} {
		s.topics = append(s.topics, menu.Topic{
			Label:  label,
			Action: func() { s.calls[i]++ },
		})
	}
}

func (s *DispatcherSuite) run(lines ...string) *menu.Dispatcher {
	in := strings.NewReader(strings.Join(lines, "\n"))
	d := menu.New(s.topics, menu.Config{In: in, Out: s.out})
	require.NoError(s.T(), d.Run())
	return d
}

func (s *DispatcherSuite) prompts() int {
	return strings.Count(s.out.String(), "Select (0-3, q): ")
}

// TestEachIndexInvokesItsTopic checks that i runs exactly topic i, once.
func (s *DispatcherSuite) TestEachIndexInvokesItsTopic() {
	for i := 1; i <= 3; i++ {
		s.SetupTest()
		d := s.run(strconv.Itoa(i), "0")
		want := []int{0, 0, 0}
		want[i-1] = 1
		s.Equal(want, s.calls, "selection %d", i)
		s.Equal(menu.Stats{Invoked: 1}, d.Stats())
	}
}

// TestSelectThenQuit: "2", "0" runs topic 2 once and stops prompting.
func (s *DispatcherSuite) TestSelectThenQuit() {
	s.run("2", "0")
	s.Equal([]int{0, 1, 0}, s.calls)
	s.Equal(2, s.prompts())
	s.True(strings.HasSuffix(s.out.String(), "Bye!\n"))
}

// TestInvalidThenValid: "abc", "1", "0" reports once, runs topic 1 once.
func (s *DispatcherSuite) TestInvalidThenValid() {
	d := s.run("abc", "1", "0")
	s.Equal([]int{1, 0, 0}, s.calls)
	s.Equal(1, strings.Count(s.out.String(), "Invalid selection"))
	s.Contains(s.out.String(), `Invalid selection "abc": enter a number between 0 and 3, or q to quit.`)
	s.Equal(menu.Stats{Invoked: 1, Invalid: 1}, d.Stats())
}

// TestRejectedInputs never invoke an action.
func (s *DispatcherSuite) TestRejectedInputs() {
	for _, in := range []string{"", "abc", "1.5", "4", "-1", "99999999999999999999", "two"} {
		s.SetupTest()
		d := s.run(in, "0")
		s.Equal([]int{0, 0, 0}, s.calls, "input %q", in)
		s.Equal(1, d.Stats().Invalid, "input %q", in)
		s.Contains(s.out.String(), "Invalid selection", "input %q", in)
	}
}

// TestQuitTokens end the loop without running anything.
func (s *DispatcherSuite) TestQuitTokens() {
	for _, in := range []string{"0", "q", "Q", "quit", "EXIT", "  0  ", "00"} {
		s.SetupTest()
		s.run(in, "1")
		s.Equal([]int{0, 0, 0}, s.calls, "input %q", in)
		s.Equal(1, s.prompts(), "input %q", in)
	}
}

// TestEndOfInput is an implicit quit.
func (s *DispatcherSuite) TestEndOfInput() {
	d := s.run()
	s.Equal([]int{0, 0, 0}, s.calls)
	s.Equal(menu.Stats{}, d.Stats())

	s.SetupTest()
	s.run("3") // no trailing quit
	s.Equal([]int{0, 0, 1}, s.calls)
}

// TestMenuFormat checks numbering and the quit entry.
func (s *DispatcherSuite) TestMenuFormat() {
	s.run("0")
	out := s.out.String()
	s.Contains(out, "  1. Alpha\n  2. Beta\n  3. Gamma\n  0. Quit\n")
	s.NotContains(out, "╔", "no banner without a title")
}

// TestMenuRedisplayedAfterAction renders the list once per visit.
func (s *DispatcherSuite) TestMenuRedisplayedAfterAction() {
	s.run("1", "x", "2", "0")
	s.Equal(3, strings.Count(s.out.String(), "  1. Alpha"))
	s.Equal(2, strings.Count(s.out.String(), "---"))
}

// TestOversizedLineIsRecoverable rejects a huge line and keeps reading.
func (s *DispatcherSuite) TestOversizedLineIsRecoverable() {
	for _, size := range []int{1025, 5000, 70000} {
		s.SetupTest()
		d := s.run(strings.Repeat("x", size), "1", "0")
		s.Equal([]int{1, 0, 0}, s.calls, "size %d", size)
		s.Equal(menu.Stats{Invoked: 1, Invalid: 1}, d.Stats(), "size %d", size)
		s.Contains(s.out.String(), `Invalid selection "xxxxxxxxxxxxxxxx..."`, "size %d", size)
	}

	// An oversized digit string is not parsed from its kept prefix.
	s.SetupTest()
	d := s.run("1"+strings.Repeat(" ", 70000)+"2", "0")
	s.Equal([]int{0, 0, 0}, s.calls)
	s.Equal(1, d.Stats().Invalid)
}

// TestCRLFLines accepts Windows line endings.
func (s *DispatcherSuite) TestCRLFLines() {
	in := strings.NewReader("2\r\n0\r\n")
	d := menu.New(s.topics, menu.Config{In: in, Out: s.out})
	s.Require().NoError(d.Run())
	s.Equal([]int{0, 1, 0}, s.calls)
	s.Zero(d.Stats().Invalid)
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherSuite))
}

func TestTitleAndReference(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ran := false
	topics := []menu.Topic{{
		Label:  "Docs",
		Ref:    "https://go.dev/doc/",
		Action: func() { ran = true },
	}}
	d := menu.New(topics, menu.Config{In: strings.NewReader("1\nq\n"), Out: &out, Title: "Go Concepts"})
	require.NoError(t, d.Run())

	assert.True(t, ran)
	assert.Contains(t, out.String(), "║  Go Concepts  ║")
	assert.Contains(t, out.String(), "Reference: https://go.dev/doc/\n")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReadErrorIsReturned(t *testing.T) {
	t.Parallel()

	d := menu.New(nil, menu.Config{In: failingReader{}, Out: &bytes.Buffer{}})
	err := d.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "menu: read selection: disk on fire")
}

func TestEmptyMenuOnlyQuits(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	d := menu.New(nil, menu.Config{In: strings.NewReader("1\n0\n"), Out: &out})
	require.NoError(t, d.Run())
	assert.Equal(t, 1, d.Stats().Invalid)
	assert.Contains(t, out.String(), "between 0 and 0")
}

func TestParseSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		idx  int
		quit bool
	}{
		{in: "1", idx: 1},
		{in: "3", idx: 3},
		{in: "0", quit: true},
		{in: "-0", quit: true},
		{in: "q", quit: true},
		{in: "Quit", quit: true},
		{in: "exit", quit: true},
	}
	for _, tt := range tests {
		idx, quit, err := menu.ParseSelection(tt.in, 3)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.idx, idx, "input %q", tt.in)
		assert.Equal(t, tt.quit, quit, "input %q", tt.in)
	}

	for _, in := range []string{"", "abc", "4", "-1", "1.0", "99999999999999999999"} {
		idx, quit, err := menu.ParseSelection(in, 3)
		require.ErrorIs(t, err, menu.ErrInvalidSelection, "input %q", in)
		assert.Zero(t, idx)
		assert.False(t, quit)
	}
}
