package scripture

import (
	"math/rand/v2"
	"strings"

	"github.com/abdulachik/selah/internal/catalog"
)

// Picker returns an index in [0, n). n is always positive.
type Picker func(n int) int

// RandomPicker picks uniformly using the process-wide source.
func RandomPicker(n int) int {
	return rand.IntN(n)
}

// pass is one step of the specificity cascade.
type pass struct {
	name string
	keep func(r Record) bool
}

func cascade(tradition, emotion, intention string) []pass {
	sameTradition := func(r Record) bool {
		return strings.EqualFold(r.Tradition, tradition)
	}

	return []pass{
		{"tradition+emotion|intention", func(r Record) bool {
			return sameTradition(r) && (r.HasEmotion(emotion) || r.HasTheme(intention))
		}},
		{"tradition+emotion", func(r Record) bool {
			return sameTradition(r) && r.HasEmotion(emotion)
		}},
		{"tradition+intention", func(r Record) bool {
			return sameTradition(r) && r.HasTheme(intention)
		}},
		{"universal", func(r Record) bool {
			return r.Tradition == catalog.UniversalTradition
		}},
	}
}

// Candidates returns the records of the first cascade pass that matches
// anything, along with the pass name. It returns nil when no pass matches.
func (c *Corpus) Candidates(tradition, emotion, intention string) ([]Record, string) {
	for _, p := range cascade(tradition, emotion, intention) {
		var out []Record
		for _, r := range c.records {
			if p.keep(r) {
				out = append(out, r)
			}
		}
		if len(out) > 0 {
			return out, p.name
		}
	}
	return nil, ""
}

// Select picks one record for the given tradition key, emotion token and
// intention token. A nil pick uses RandomPicker. The boolean is false only
// when no record matches any pass, which with a universal entry present
// means the corpus is empty.
func (c *Corpus) Select(tradition, emotion, intention string, pick Picker) (Record, bool) {
	candidates, _ := c.Candidates(tradition, emotion, intention)
	if len(candidates) == 0 {
		return Record{}, false
	}
	if pick == nil {
		pick = RandomPicker
	}
	return candidates[pick(len(candidates))], true
}
