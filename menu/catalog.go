package menu

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is the declarative topic list, usually loaded from topics.yaml.
type Catalog struct {
	Title  string  `yaml:"title"`
	RunAll string  `yaml:"run_all,omitempty"` // label of the "run everything" entry; empty disables it
	Topics []Entry `yaml:"topics"`
}

// Entry describes one topic. Key links it to the Go action that runs it.
type Entry struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Ref   string `yaml:"ref,omitempty"`
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks:
//   - non-empty title
//   - at least one topic
//   - every entry has a key and a label
//   - keys are unique
func (c *Catalog) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidCatalog)
	}
	if len(c.Topics) == 0 {
		return fmt.Errorf("%w: at least one topic is required", ErrInvalidCatalog)
	}
	seen := make(map[string]int, len(c.Topics))
	for i, e := range c.Topics {
		if e.Key == "" {
			return fmt.Errorf("%w: topic %d has no key", ErrInvalidCatalog, i+1)
		}
		if strings.TrimSpace(e.Label) == "" {
			return fmt.Errorf("%w: topic %q has no label", ErrInvalidCatalog, e.Key)
		}
		if prev, dup := seen[e.Key]; dup {
			return fmt.Errorf("%w: key %q used by topics %d and %d", ErrInvalidCatalog, e.Key, prev, i+1)
		}
		seen[e.Key] = i + 1
	}
	return nil
}

// Bind pairs each entry with its action, keeping catalog order. Every entry
// needs an action and every action needs an entry. When RunAll is set, a
// final topic that runs all the others is appended; its headers go to w.
func (c *Catalog) Bind(actions map[string]Action, w io.Writer) ([]Topic, error) {
	topics := make([]Topic, 0, len(c.Topics)+1)
	listed := make(map[string]bool, len(c.Topics))
	for _, e := range c.Topics {
		act, ok := actions[e.Key]
		if !ok || act == nil {
			return nil, fmt.Errorf("bind %q: %w", e.Key, ErrUnknownTopic)
		}
		listed[e.Key] = true
		topics = append(topics, Topic{Label: e.Label, Ref: e.Ref, Action: act})
	}
	for key := range actions {
		if !listed[key] {
			return nil, fmt.Errorf("bind %q: %w", key, ErrUnboundAction)
		}
	}
	if c.RunAll != "" {
		topics = append(topics, All(c.RunAll, w, topics))
	}
	return topics, nil
}
