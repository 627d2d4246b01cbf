// Package resolver turns raw wizard selections into display labels and the
// tradition key used for scripture matching. Every function is pure and falls
// back to a default instead of failing.
package resolver

import (
	"regexp"
	"strings"

	"github.com/abdulachik/selah/internal/catalog"
)

// Defaults used when a selection is empty or unrecognized.
const (
	DefaultTradition = "Universal"
	DefaultAddress   = "the Divine"
	DefaultEmotion   = "reflective"
	DefaultIntention = "guidance"
	DefaultTone      = "Poetic"
	DefaultLength    = "4-6 paragraphs"

	CustomTradition = "Custom spiritual belief"
	CustomAddress   = "the Sacred"
)

var lengthGuidance = map[string]string{
	"short":    "2-3 short paragraphs (about 80-120 words)",
	"medium":   "4-5 paragraphs (about 150-250 words)",
	"extended": "6-8 paragraphs (about 300-450 words)",
}

var whitespace = regexp.MustCompile(`\s+`)

// Belief is the resolved belief context. CustomDescription is set only for
// custom beliefs.
type Belief struct {
	TraditionLabel    string
	AddressForm       string
	CustomDescription string
}

// IsCustom reports whether the belief carries a free-text description.
func (b Belief) IsCustom() bool {
	return b.CustomDescription != ""
}

// ResolveBelief picks one of four shapes: a matched religion, a matched
// spiritual path, a custom description, or the universal default.
func ResolveBelief(beliefType, beliefValue, customBelief string) Belief {
	switch beliefType {
	case catalog.BeliefReligion:
		if r, ok := catalog.Religion(beliefValue); ok {
			return Belief{TraditionLabel: r.Label, AddressForm: r.Address}
		}
	case catalog.BeliefSpiritual:
		if p, ok := catalog.SpiritualPath(beliefValue); ok {
			return Belief{TraditionLabel: p.Label, AddressForm: p.Address}
		}
	case catalog.BeliefCustom:
		if customBelief != "" {
			return Belief{
				TraditionLabel:    CustomTradition,
				AddressForm:       CustomAddress,
				CustomDescription: customBelief,
			}
		}
	}
	return Belief{TraditionLabel: DefaultTradition, AddressForm: DefaultAddress}
}

// EmotionLabel prefers the custom text, then the catalog label.
func EmotionLabel(emotionalState, customEmotion string) string {
	if customEmotion != "" {
		return customEmotion
	}
	if e, ok := catalog.Emotion(emotionalState); ok {
		return e.Label
	}
	return DefaultEmotion
}

// IntentionLabel prefers the custom text, then the catalog label.
func IntentionLabel(intention, customIntention string) string {
	if customIntention != "" {
		return customIntention
	}
	if i, ok := catalog.Intention(intention); ok {
		return i.Label
	}
	return DefaultIntention
}

// ToneLabel returns the catalog label for tone.
func ToneLabel(tone string) string {
	if t, ok := catalog.Tone(tone); ok {
		return t.Label
	}
	return DefaultTone
}

// LengthGuidance returns the length instruction handed to the model.
// The unrecognized default intentionally differs from the medium wording.
func LengthGuidance(length string) string {
	if g, ok := lengthGuidance[length]; ok {
		return g
	}
	return DefaultLength
}

// TraditionKey lower-cases a tradition label and collapses whitespace runs
// into single hyphens.
func TraditionKey(traditionLabel string) string {
	return whitespace.ReplaceAllString(strings.ToLower(traditionLabel), "-")
}

// ScriptureToken picks the token used for corpus matching: the catalog key
// when present, otherwise the lower-cased custom text.
func ScriptureToken(key, custom string) string {
	if key != "" {
		return key
	}
	return strings.ToLower(custom)
}
