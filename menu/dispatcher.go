// Package menu implements the interactive topic menu: it renders a numbered
// list of topics, reads the user's choice and runs the matching
// demonstration until the user quits or input ends.
package menu

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds dispatcher construction parameters.
type Config struct {
	// In is where selections are read from. Defaults to os.Stdin.
	In io.Reader

	// Out receives the menu, prompts and messages. Defaults to os.Stdout.
	Out io.Writer

	// Title is printed as a banner above the topic list. Optional.
	Title string

	// Logger records dispatch decisions. If nil, logging is discarded.
	Logger *log.Logger
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.In == nil {
		out.In = os.Stdin
	}
	if out.Out == nil {
		out.Out = os.Stdout
	}
	if out.Logger == nil {
		out.Logger = log.New(io.Discard, "", 0)
	}
	return out
}

// Stats counts what the dispatcher did during Run.
type Stats struct {
	Invoked int // topic actions run
	Invalid int // selections rejected
}

// Dispatcher drives the menu loop.
//
// Lifecycle:
//
//	d := menu.New(topics, cfg)
//	err := d.Run() // returns on quit or end of input
type Dispatcher struct {
	cfg    Config
	topics []Topic
	stats  Stats
}

// New creates a Dispatcher over an ordered topic list.
func New(topics []Topic, cfg Config) *Dispatcher {
	return &Dispatcher{
		cfg:    cfg.withDefaults(),
		topics: append([]Topic(nil), topics...),
	}
}

// Stats returns the counters collected so far.
func (d *Dispatcher) Stats() Stats { return d.stats }

// maxLineLen caps how much of a selection line is kept. The rest of a longer
// line is read and dropped, and the line is rejected.
const maxLineLen = 1024

// Run loops until the user quits or input ends; both return nil. Only a
// failing reader produces an error.
func (d *Dispatcher) Run() error {
	r := bufio.NewReader(d.cfg.In)
	d.render()

	for {
		d.prompt()
		line, tooLong, err := readLine(r)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(d.cfg.Out)
			d.cfg.Logger.Println("[menu] end of input")
			return nil
		case err != nil:
			return fmt.Errorf("menu: read selection: %w", err)
		}

		input := strings.TrimSpace(line)
		var (
			idx  int
			quit bool
		)
		if tooLong {
			if len(input) > 16 {
				input = input[:16] + "..."
			}
			err = fmt.Errorf("%w: line longer than %d bytes", ErrInvalidSelection, maxLineLen)
		} else {
			idx, quit, err = ParseSelection(input, len(d.topics))
		}
		switch {
		case quit:
			d.cfg.Logger.Println("[menu] quit")
			fmt.Fprintln(d.cfg.Out, "Bye!")
			return nil
		case err != nil:
			d.stats.Invalid++
			d.cfg.Logger.Printf("[menu] %v", err)
			fmt.Fprintf(d.cfg.Out, "Invalid selection %q: enter a number between 0 and %d, or q to quit.\n",
				input, len(d.topics))
			continue
		}

		t := d.topics[idx-1]
		d.cfg.Logger.Printf("[menu] invoke topic %d %q", idx, t.Label)
		if t.Ref != "" {
			fmt.Fprintf(d.cfg.Out, "Reference: %s\n", t.Ref)
		}
		t.Action()
		d.stats.Invoked++

		fmt.Fprintln(d.cfg.Out)
		fmt.Fprintln(d.cfg.Out, "---")
		fmt.Fprintln(d.cfg.Out)
		d.render()
	}
}

// readLine returns the next line without its terminator. A last line with no
// newline still counts; io.EOF means nothing was left. Lines longer than
// maxLineLen are consumed whole, truncated, and flagged with tooLong.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, rerr := r.ReadSlice('\n')
		more := errors.Is(rerr, bufio.ErrBufferFull)
		if rerr != nil && !more && !errors.Is(rerr, io.EOF) {
			return "", false, rerr
		}
		if errors.Is(rerr, io.EOF) && len(chunk) == 0 && len(buf) == 0 {
			return "", false, io.EOF
		}

		chunk = bytes.TrimSuffix(chunk, []byte("\n"))
		if room := maxLineLen - len(buf); len(chunk) > room {
			buf = append(buf, chunk[:room]...)
			tooLong = true
		} else {
			buf = append(buf, chunk...)
		}
		if !more {
			break
		}
	}
	return strings.TrimSuffix(string(buf), "\r"), tooLong, nil
}

// ParseSelection maps a trimmed input line to a 1-based index into n topics
// or a quit request. Anything else wraps ErrInvalidSelection.
func ParseSelection(input string, n int) (idx int, quit bool, err error) {
	switch strings.ToLower(input) {
	case "q", "quit", "exit":
		return 0, true, nil
	}

	v, convErr := strconv.Atoi(input)
	if convErr != nil {
		var numErr *strconv.NumError
		if errors.As(convErr, &numErr) {
			convErr = numErr.Err
		}
		return 0, false, fmt.Errorf("%w %q: %v", ErrInvalidSelection, input, convErr)
	}
	if v == 0 {
		return 0, true, nil
	}
	if v < 0 || v > n {
		return 0, false, fmt.Errorf("%w %q: out of range [0, %d]", ErrInvalidSelection, input, n)
	}
	return v, false, nil
}

func (d *Dispatcher) render() {
	out := d.cfg.Out
	if d.cfg.Title != "" {
		bar := strings.Repeat("═", len([]rune(d.cfg.Title))+4)
		fmt.Fprintf(out, "╔%s╗\n║  %s  ║\n╚%s╝\n\n", bar, d.cfg.Title, bar)
	}
	fmt.Fprintln(out, "Choose a topic:")
	fmt.Fprintln(out)
	for i, t := range d.topics {
		fmt.Fprintf(out, "  %d. %s\n", i+1, t.Label)
	}
	fmt.Fprintln(out, "  0. Quit")
	fmt.Fprintln(out)
}

func (d *Dispatcher) prompt() {
	fmt.Fprintf(d.cfg.Out, "Select (0-%d, q): ", len(d.topics))
}
