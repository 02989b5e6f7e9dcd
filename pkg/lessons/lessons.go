// Package lessons describes the selectable practice topics: their titles,
// ordered step checklist, hints, and which management-console controls are
// relevant to them. The built-in catalog is embedded; a custom catalog can be
// loaded from a YAML file with the same shape.
package lessons

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/echo"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtin []byte

// ErrUnknownTopic is returned when a topic is not in the catalog.
var ErrUnknownTopic = errors.New("lessons: unknown topic")

// Topic identifies a lesson.
type Topic string

const (
	TopicOnboard       Topic = "onboard"
	TopicAccessControl Topic = "acp"
	TopicNAT           Topic = "nat"
	TopicVPN           Topic = "s2s"
)

// fallbackHint is shown for lessons without hints of their own.
const fallbackHint = "Guidance for this practice will appear here."

// Lesson is one practice topic.
type Lesson struct {
	Topic   Topic    `yaml:"topic"`
	Title   string   `yaml:"title"`
	Label   string   `yaml:"label"`
	Steps   []string `yaml:"steps"`
	Hints   []string `yaml:"hints"`
	Tabs    []string `yaml:"tabs"`
	Actions []string `yaml:"actions"`
}

// HintMarkdown renders the hints as a markdown bullet list.
func (l Lesson) HintMarkdown() string {
	hints := l.Hints
	if len(hints) == 0 {
		hints = []string{fallbackHint}
	}
	var sb strings.Builder
	for _, h := range hints {
		sb.WriteString("- ")
		sb.WriteString(h)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (l Lesson) clone() Lesson {
	l.Steps = slices.Clone(l.Steps)
	l.Hints = slices.Clone(l.Hints)
	l.Tabs = slices.Clone(l.Tabs)
	l.Actions = slices.Clone(l.Actions)
	return l
}

// Catalog is an ordered, read-only set of lessons.
type Catalog struct {
	tabs    []string
	lessons []Lesson
}

type catalogFile struct {
	Tabs    []string `yaml:"tabs"`
	Lessons []Lesson `yaml:"lessons"`
}

// Default returns a fresh copy of the built-in catalog.
func Default() Catalog {
	c, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("lessons: built-in catalog: %v", err))
	}
	return c
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalog{}, fmt.Errorf("lessons: parse catalog: %w", err)
	}

	c := Catalog{tabs: f.Tabs, lessons: f.Lessons}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return Catalog{}, fmt.Errorf("lessons: load catalog: %w", err)
	}
	return Parse(data)
}

// Validate checks that topics are unique and every lesson has steps.
func (c Catalog) Validate() error {
	if len(c.lessons) == 0 {
		return fmt.Errorf("lessons: catalog: at least one lesson is required")
	}

	seen := make(map[Topic]struct{}, len(c.lessons))
	for _, l := range c.lessons {
		if l.Topic == "" {
			return fmt.Errorf("lessons: catalog: lesson topic is required")
		}
		if _, dup := seen[l.Topic]; dup {
			return fmt.Errorf("lessons: catalog: duplicate topic %q", l.Topic)
		}
		seen[l.Topic] = struct{}{}

		if len(l.Steps) == 0 {
			return fmt.Errorf("lessons: catalog: lesson %q: at least one step is required", l.Topic)
		}
		for _, a := range l.Actions {
			if _, ok := echo.ParseAction(a); !ok {
				return fmt.Errorf("lessons: catalog: lesson %q: unknown action %q", l.Topic, a)
			}
		}
	}
	return nil
}

// Lookup returns the lesson for t.
func (c Catalog) Lookup(t Topic) (Lesson, bool) {
	for _, l := range c.lessons {
		if l.Topic == t {
			return l.clone(), true
		}
	}
	return Lesson{}, false
}

// Require returns the lesson for t or ErrUnknownTopic.
func (c Catalog) Require(t Topic) (Lesson, error) {
	l, ok := c.Lookup(t)
	if !ok {
		return Lesson{}, fmt.Errorf("%w %q", ErrUnknownTopic, t)
	}
	return l, nil
}

// Topics returns the topics in catalog order.
func (c Catalog) Topics() []Topic {
	out := make([]Topic, len(c.lessons))
	for i, l := range c.lessons {
		out[i] = l.Topic
	}
	return out
}

// Lessons returns copies of every lesson in catalog order.
func (c Catalog) Lessons() []Lesson {
	out := make([]Lesson, len(c.lessons))
	for i, l := range c.lessons {
		out[i] = l.clone()
	}
	return out
}

// First returns the first topic, the default selection. Empty for an
// empty catalog.
func (c Catalog) First() Topic {
	if len(c.lessons) == 0 {
		return ""
	}
	return c.lessons[0].Topic
}

// Tabs returns every management-console tab.
func (c Catalog) Tabs() []string {
	return slices.Clone(c.tabs)
}

// VisibleTabs returns the tabs to show for t. With relevantOnly set and a
// lesson that names its tabs, only those are shown.
func (c Catalog) VisibleTabs(t Topic, relevantOnly bool) []string {
	if relevantOnly {
		if l, ok := c.Lookup(t); ok && len(l.Tabs) > 0 {
			return l.Tabs
		}
	}
	return c.Tabs()
}

// VisibleActions returns the graphical actions to offer for t. With
// relevantOnly set only the lesson's own actions are offered.
func (c Catalog) VisibleActions(t Topic, relevantOnly bool) []echo.Action {
	if !relevantOnly {
		return slices.Clone(echo.Actions)
	}
	l, ok := c.Lookup(t)
	if !ok {
		return nil
	}
	out := make([]echo.Action, 0, len(l.Actions))
	for _, name := range l.Actions {
		if a, ok := echo.ParseAction(name); ok {
			out = append(out, a)
		}
	}
	return out
}
