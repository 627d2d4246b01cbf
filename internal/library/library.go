// Package library serves the curated collection of example prayers.
package library

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed prayers.yaml
var prayersYAML []byte

// ErrNotFound is returned when no prayer has the requested id.
var ErrNotFound = errors.New("prayer not found")

// DefaultRelated is the number of related prayers shown next to a prayer.
const DefaultRelated = 3

// Passage is a scripture excerpt attached to a library prayer.
type Passage struct {
	Text   string `yaml:"text" json:"text"`
	Source string `yaml:"source" json:"source"`
}

// Prayer is one library entry.
type Prayer struct {
	ID        string   `yaml:"id" json:"id"`
	Title     string   `yaml:"title" json:"title"`
	Text      string   `yaml:"text" json:"text"`
	Tradition string   `yaml:"tradition" json:"tradition"`
	Emotion   string   `yaml:"emotion" json:"emotion"`
	Intention string   `yaml:"intention" json:"intention"`
	Scripture *Passage `yaml:"scripture,omitempty" json:"scripture,omitempty"`
}

// Filter narrows the library. Empty or "all" facets match everything.
type Filter struct {
	Search    string
	Tradition string
	Emotion   string
	Intention string
}

// Library is an immutable, ordered prayer collection.
type Library struct {
	prayers []Prayer
}

// New builds a library from prayers, keeping their order.
func New(prayers []Prayer) *Library {
	return &Library{prayers: slices.Clone(prayers)}
}

// Load parses a YAML list of prayers. Ids must be unique.
func Load(r io.Reader) (*Library, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var prayers []Prayer
	if err := dec.Decode(&prayers); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode prayers: %w", err)
	}

	seen := make(map[string]bool, len(prayers))
	for i, p := range prayers {
		if p.ID == "" || p.Title == "" || p.Text == "" {
			return nil, fmt.Errorf("prayer %d: id, title and text are required", i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("prayer %d: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
	}

	return &Library{prayers: prayers}, nil
}

var defaultLibrary = sync.OnceValue(func() *Library {
	l, err := Load(bytes.NewReader(prayersYAML))
	if err != nil {
		panic(fmt.Sprintf("library: embedded prayers: %v", err))
	}
	return l
})

// Default returns the embedded library.
func Default() *Library {
	return defaultLibrary()
}

// All returns every prayer in library order.
func (l *Library) All() []Prayer {
	return slices.Clone(l.prayers)
}

// Len returns the number of prayers.
func (l *Library) Len() int {
	return len(l.prayers)
}

// Get returns the prayer with id.
func (l *Library) Get(id string) (Prayer, error) {
	for _, p := range l.prayers {
		if p.ID == id {
			return p, nil
		}
	}
	return Prayer{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Find returns the prayers matching every facet of f.
func (l *Library) Find(f Filter) []Prayer {
	search := strings.ToLower(f.Search)

	out := []Prayer{}
	for _, p := range l.prayers {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Text), search) {
			continue
		}
		if !facet(f.Tradition, p.Tradition) || !facet(f.Emotion, p.Emotion) || !facet(f.Intention, p.Intention) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ByTradition returns prayers of one tradition.
func (l *Library) ByTradition(tradition string) []Prayer {
	return l.where(func(p Prayer) bool { return p.Tradition == tradition })
}

// ByEmotion returns prayers for one emotional state.
func (l *Library) ByEmotion(emotion string) []Prayer {
	return l.where(func(p Prayer) bool { return p.Emotion == emotion })
}

// ByIntention returns prayers for one intention.
func (l *Library) ByIntention(intention string) []Prayer {
	return l.where(func(p Prayer) bool { return p.Intention == intention })
}

// Related returns up to n other prayers sharing the tradition, emotion or
// intention of the prayer with id. n <= 0 uses DefaultRelated.
func (l *Library) Related(id string, n int) ([]Prayer, error) {
	target, err := l.Get(id)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultRelated
	}

	related := l.where(func(p Prayer) bool {
		return p.ID != target.ID &&
			(p.Tradition == target.Tradition || p.Emotion == target.Emotion || p.Intention == target.Intention)
	})
	if len(related) > n {
		related = related[:n]
	}
	return related, nil
}

// Random returns n distinct prayers in random order. n <= 0 uses
// DefaultRelated; n larger than the library returns all of them.
func (l *Library) Random(n int) []Prayer {
	if n <= 0 {
		n = DefaultRelated
	}
	shuffled := slices.Clone(l.prayers)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

func (l *Library) where(keep func(Prayer) bool) []Prayer {
	out := []Prayer{}
	for _, p := range l.prayers {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func facet(want, got string) bool {
	return want == "" || want == "all" || want == got
}
