package composer

import (
	"github.com/abdulachik/selah/internal/catalog"
	"github.com/abdulachik/selah/internal/prompt"
	"github.com/abdulachik/selah/internal/resolver"
)

// Request is one set of wizard answers. Every field may be empty.
type Request struct {
	Name             string   `json:"name"`
	BeliefType       string   `json:"beliefType"`
	BeliefValue      string   `json:"beliefValue"`
	CustomBelief     string   `json:"customBelief"`
	EmotionalState   string   `json:"emotionalState"`
	CustomEmotion    string   `json:"customEmotion"`
	Intention        string   `json:"intention"`
	CustomIntention  string   `json:"customIntention"`
	Tone             string   `json:"tone"`
	Length           string   `json:"length"`
	PrayerType       string   `json:"prayerType"`
	FamilyMembers    []string `json:"familyMembers"`
	GroupDescription string   `json:"groupDescription"`
}

// DefaultRequest mirrors the initial state of the wizard.
func DefaultRequest() Request {
	return Request{
		PrayerType: catalog.PrayerSelf,
		BeliefType: catalog.BeliefReligion,
		Tone:       "poetic",
		Length:     "medium",
	}
}

// Result is the composed prayer. Scripture fields are empty when nothing
// matched.
type Result struct {
	Prayer               string `json:"prayer"`
	ScriptureQuote       string `json:"scriptureQuote"`
	ScriptureSource      string `json:"scriptureSource"`
	ScriptureExplanation string `json:"scriptureExplanation"`
}

// Resolved is the request after label resolution.
type Resolved struct {
	Prompt         prompt.Context
	TraditionKey   string
	EmotionToken   string
	IntentionToken string
}

// Resolve maps raw answers to labels, instructions and matching tokens.
func Resolve(req Request) Resolved {
	prayerType := req.PrayerType
	if prayerType == "" {
		prayerType = catalog.PrayerSelf
	}

	belief := resolver.ResolveBelief(req.BeliefType, req.BeliefValue, req.CustomBelief)

	return Resolved{
		Prompt: prompt.Context{
			Name:             req.Name,
			Belief:           belief,
			Emotion:          resolver.EmotionLabel(req.EmotionalState, req.CustomEmotion),
			Intention:        resolver.IntentionLabel(req.Intention, req.CustomIntention),
			Tone:             resolver.ToneLabel(req.Tone),
			Length:           resolver.LengthGuidance(req.Length),
			PrayerType:       prayerType,
			FamilyMembers:    req.FamilyMembers,
			GroupDescription: req.GroupDescription,
		},
		TraditionKey:   resolver.TraditionKey(belief.TraditionLabel),
		EmotionToken:   resolver.ScriptureToken(req.EmotionalState, req.CustomEmotion),
		IntentionToken: resolver.ScriptureToken(req.Intention, req.CustomIntention),
	}
}
