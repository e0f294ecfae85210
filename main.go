package main

import (
	_ "embed"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/marcodamonte/concepts/basics"
	"github.com/marcodamonte/concepts/collections"
	"github.com/marcodamonte/concepts/errhandling"
	"github.com/marcodamonte/concepts/generics"
	"github.com/marcodamonte/concepts/iterators"
	"github.com/marcodamonte/concepts/lifetimes"
	"github.com/marcodamonte/concepts/menu"
	"github.com/marcodamonte/concepts/ownership"
	"github.com/marcodamonte/concepts/patterns"
	"github.com/marcodamonte/concepts/structs"
)

//go:embed topics.yaml
var catalogYAML []byte

// Pick a topic from the menu; 0 or q quits.
//
// Run:
//
//	go run .        # menu only
//	go run . -v     # also log dispatch decisions to stderr
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process: it returns the exit code. 0 on quit or
// end of input, 1 when the catalog or the input fails, 2 on bad flags.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("concepts", flag.ContinueOnError)
	fs.SetOutput(errOut)
	verbose := fs.Bool("v", false, "log dispatch decisions to stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(errOut, "", log.LstdFlags|log.Lmicroseconds)
	}
	fail := log.New(errOut, "", log.LstdFlags)

	topics, title, err := loadTopics(catalogYAML, out)
	if err != nil {
		fail.Printf("[main] %v", err)
		return 1
	}
	logger.Printf("[main] loaded %d topics", len(topics))

	d := menu.New(topics, menu.Config{
		In:     in,
		Out:    out,
		Title:  title,
		Logger: logger,
	})
	if err := d.Run(); err != nil {
		fail.Printf("[main] %v", err)
		return 1
	}

	s := d.Stats()
	logger.Printf("[main] done: invoked=%d invalid=%d", s.Invoked, s.Invalid)
	return 0
}

// loadTopics parses the catalog and binds every key to the package that
// demonstrates it. Demos write to out.
func loadTopics(data []byte, out io.Writer) ([]menu.Topic, string, error) {
	cat, err := menu.ParseCatalog(data)
	if err != nil {
		return nil, "", err
	}
	bind := func(run func(io.Writer)) menu.Action {
		return func() { run(out) }
	}
	topics, err := cat.Bind(map[string]menu.Action{
		"basics":      bind(basics.Run),
		"ownership":   bind(ownership.Run),
		"structs":     bind(structs.Run),
		"patterns":    bind(patterns.Run),
		"errhandling": bind(errhandling.Run),
		"generics":    bind(generics.Run),
		"collections": bind(collections.Run),
		"iterators":   bind(iterators.Run),
		"lifetimes":   bind(lifetimes.Run),
	}, out)
	if err != nil {
		return nil, "", err
	}
	return topics, cat.Title, nil
}
