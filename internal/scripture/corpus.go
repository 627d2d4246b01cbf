// Package scripture holds the curated scripture corpus and the relevance
// matcher that pairs a passage with a generated prayer.
package scripture

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed corpus.yaml
var corpusYAML []byte

// Record is a single corpus entry.
type Record struct {
	Text      string   `yaml:"text" json:"text"`
	Source    string   `yaml:"source" json:"source"`
	Tradition string   `yaml:"tradition" json:"tradition"`
	Themes    []string `yaml:"themes" json:"themes"`
	Emotions  []string `yaml:"emotions" json:"emotions"`
}

// HasTheme reports whether theme is one of the record's themes.
func (r Record) HasTheme(theme string) bool {
	return slices.Contains(r.Themes, theme)
}

// HasEmotion reports whether emotion is one of the record's emotions.
func (r Record) HasEmotion(emotion string) bool {
	return slices.Contains(r.Emotions, emotion)
}

// Corpus is an immutable set of records. It is safe for concurrent reads.
type Corpus struct {
	records []Record
}

// NewCorpus builds a corpus from records. The slice is copied.
func NewCorpus(records []Record) *Corpus {
	return &Corpus{records: slices.Clone(records)}
}

// Load parses a YAML list of records.
func Load(r io.Reader) (*Corpus, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var records []Record
	if err := dec.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	for i, rec := range records {
		if rec.Text == "" || rec.Source == "" || rec.Tradition == "" {
			return nil, fmt.Errorf("record %d: text, source and tradition are required", i)
		}
	}

	return &Corpus{records: records}, nil
}

// LoadFile parses a YAML corpus from disk.
func LoadFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return Load(bytes.NewReader(data))
}

var defaultCorpus = sync.OnceValue(func() *Corpus {
	c, err := Load(bytes.NewReader(corpusYAML))
	if err != nil {
		panic(fmt.Sprintf("scripture: embedded corpus: %v", err))
	}
	return c
})

// Default returns the embedded corpus.
func Default() *Corpus {
	return defaultCorpus()
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	return len(c.records)
}

// Records returns a copy of all records.
func (c *Corpus) Records() []Record {
	return slices.Clone(c.records)
}
