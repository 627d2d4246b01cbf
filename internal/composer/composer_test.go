package composer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulachik/selah/internal/llm"
	"github.com/abdulachik/selah/internal/prompt"
	"github.com/abdulachik/selah/internal/scripture"
)

func first(int) int { return 0 }

func TestCompose(t *testing.T) {
	t.Run("buddhist scenario", func(t *testing.T) {
		gen := llm.NewStatic("Preamble\n---PRAYER_START---\n  May I be at peace.  \n---PRAYER_END---")
		c := New(Config{Generator: gen})

		result, err := c.Compose(context.Background(), Request{
			BeliefType:     "religion",
			BeliefValue:    "buddhism",
			EmotionalState: "peaceful",
			Intention:      "peace",
			Tone:           "poetic",
			Length:         "short",
		})
		require.NoError(t, err)

		assert.Equal(t, "May I be at peace.", result.Prayer)
		assert.Equal(t, "Dhammapada 202", result.ScriptureSource)
		assert.Equal(t, "Peace comes from within. Do not seek it without.", result.ScriptureQuote)
		assert.Equal(t, prompt.Explanation("Peaceful", "Peace"), result.ScriptureExplanation)

		reqs := gen.Requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, prompt.MaxOutputTokens, reqs[0].MaxOutputTokens)
		assert.Equal(t, 0.85, reqs[0].Temperature)
		assert.Equal(t, 0.9, reqs[0].TopP)
		assert.Contains(t, reqs[0].Prompt, `Address the divine as "Inner wisdom"`)
	})

	t.Run("custom belief gets universal scripture", func(t *testing.T) {
		c := New(Config{Generator: llm.NewStatic("")})

		result, err := c.Compose(context.Background(), Request{
			BeliefType:   "custom",
			CustomBelief: "I find the sacred in music",
		})
		require.NoError(t, err)

		var universal []string
		for _, r := range scripture.Default().Records() {
			if r.Tradition == "universal" {
				universal = append(universal, r.Source)
			}
		}
		assert.Contains(t, universal, result.ScriptureSource)
		assert.Contains(t, result.ScriptureExplanation, "feelings of reflective")
		assert.Contains(t, result.ScriptureExplanation, "intention for guidance")
	})

	t.Run("no scripture match", func(t *testing.T) {
		c := New(Config{Generator: llm.NewStatic("plain prayer"), Corpus: scripture.NewCorpus(nil)})

		result, err := c.Compose(context.Background(), Request{})
		require.NoError(t, err)
		assert.Equal(t, &Result{Prayer: "plain prayer"}, result)
	})

	t.Run("generation failure discards scripture", func(t *testing.T) {
		boom := errors.New("upstream down")
		c := New(Config{Generator: llm.NewFailing(boom)})

		result, err := c.Compose(context.Background(), Request{BeliefType: "religion", BeliefValue: "islam"})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("model passed through", func(t *testing.T) {
		gen := llm.NewStatic("x")
		c := New(Config{Generator: gen, Model: "fixed-model", Pick: first})

		_, err := c.Compose(context.Background(), Request{})
		require.NoError(t, err)
		assert.Equal(t, "fixed-model", gen.Requests()[0].Model)
	})
}

func TestResolve(t *testing.T) {
	t.Run("custom emotion overrides label but not token", func(t *testing.T) {
		r := Resolve(Request{EmotionalState: "anxious", CustomEmotion: "Restless"})
		assert.Equal(t, "Restless", r.Prompt.Emotion)
		assert.Equal(t, "anxious", r.EmotionToken)
	})

	t.Run("custom intention token is lower-cased", func(t *testing.T) {
		r := Resolve(Request{CustomIntention: "New Beginnings"})
		assert.Equal(t, "New Beginnings", r.Prompt.Intention)
		assert.Equal(t, "new beginnings", r.IntentionToken)
	})

	t.Run("tradition key from label", func(t *testing.T) {
		r := Resolve(Request{BeliefType: "religion", BeliefValue: "african-spirituality"})
		assert.Equal(t, "african-spirituality", r.TraditionKey)

		r = Resolve(Request{BeliefType: "custom", CustomBelief: "music"})
		assert.Equal(t, "custom-spiritual-belief", r.TraditionKey)
	})

	t.Run("prayer type defaults to self", func(t *testing.T) {
		r := Resolve(Request{})
		assert.Equal(t, "self", r.Prompt.PrayerType)
	})

	t.Run("family members reach the prompt", func(t *testing.T) {
		c := New(Config{Generator: llm.NewStatic("")})
		got := c.Prompt(Request{PrayerType: "family", FamilyMembers: []string{"Ana", "Leo"}})
		assert.Contains(t, got, "Ana, Leo")
		assert.Contains(t, got, `Use "we" and "our" language`)
	})
}

func TestDefaultRequest(t *testing.T) {
	req := DefaultRequest()
	assert.Equal(t, "self", req.PrayerType)
	assert.Equal(t, "religion", req.BeliefType)
	assert.Equal(t, "poetic", req.Tone)
	assert.Equal(t, "medium", req.Length)
}
