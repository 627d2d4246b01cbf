package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBelief(t *testing.T) {
	tests := []struct {
		name        string
		beliefType  string
		beliefValue string
		custom      string
		want        Belief
	}{
		{
			name:        "religion",
			beliefType:  "religion",
			beliefValue: "buddhism",
			want:        Belief{TraditionLabel: "Buddhism", AddressForm: "Inner wisdom"},
		},
		{
			name:        "spiritual path",
			beliefType:  "spiritual",
			beliefValue: "universal-cosmic",
			want:        Belief{TraditionLabel: "Universal / Cosmic", AddressForm: "Universe / Creator"},
		},
		{
			name:       "custom",
			beliefType: "custom",
			custom:     "I find the sacred in music",
			want: Belief{
				TraditionLabel:    "Custom spiritual belief",
				AddressForm:       "the Sacred",
				CustomDescription: "I find the sacred in music",
			},
		},
		{
			name:       "custom without text",
			beliefType: "custom",
			want:       Belief{TraditionLabel: "Universal", AddressForm: "the Divine"},
		},
		{
			name:        "religion key under spiritual type",
			beliefType:  "spiritual",
			beliefValue: "islam",
			want:        Belief{TraditionLabel: "Universal", AddressForm: "the Divine"},
		},
		{
			name:        "unknown key",
			beliefType:  "religion",
			beliefValue: "pastafarian",
			want:        Belief{TraditionLabel: "Universal", AddressForm: "the Divine"},
		},
		{
			name: "everything empty",
			want: Belief{TraditionLabel: "Universal", AddressForm: "the Divine"},
		},
		{
			name:        "custom text ignored for religion",
			beliefType:  "religion",
			beliefValue: "sikhism",
			custom:      "ignored",
			want:        Belief{TraditionLabel: "Sikhism", AddressForm: "Waheguru"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBelief(tt.beliefType, tt.beliefValue, tt.custom)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.custom != "" && tt.beliefType == "custom", got.IsCustom())
		})
	}
}

func TestEmotionLabel(t *testing.T) {
	assert.Equal(t, "Peaceful", EmotionLabel("peaceful", ""))
	assert.Equal(t, "restless", EmotionLabel("peaceful", "restless"))
	assert.Equal(t, "reflective", EmotionLabel("", ""))
	assert.Equal(t, "reflective", EmotionLabel("unknown", ""))

	// Pure: identical inputs give identical outputs.
	assert.Equal(t, EmotionLabel("anxious", ""), EmotionLabel("anxious", ""))
}

func TestIntentionLabel(t *testing.T) {
	assert.Equal(t, "Healing", IntentionLabel("healing", ""))
	assert.Equal(t, "a new job", IntentionLabel("healing", "a new job"))
	assert.Equal(t, "guidance", IntentionLabel("", ""))
	assert.Equal(t, IntentionLabel("peace", ""), IntentionLabel("peace", ""))
}

func TestToneLabel(t *testing.T) {
	assert.Equal(t, "Formal / Sacred", ToneLabel("formal"))
	assert.Equal(t, "Poetic", ToneLabel(""))
	assert.Equal(t, "Poetic", ToneLabel("shouty"))
	assert.Equal(t, ToneLabel("conversational"), ToneLabel("conversational"))
}

func TestLengthGuidance(t *testing.T) {
	tests := []struct {
		length string
		want   string
	}{
		{"short", "2-3 short paragraphs (about 80-120 words)"},
		{"medium", "4-5 paragraphs (about 150-250 words)"},
		{"extended", "6-8 paragraphs (about 300-450 words)"},
		{"unknown-value", "4-6 paragraphs"},
		{"", "4-6 paragraphs"},
	}

	for _, tt := range tests {
		t.Run(tt.length, func(t *testing.T) {
			assert.Equal(t, tt.want, LengthGuidance(tt.length))
		})
	}
}

func TestTraditionKey(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Buddhism", "buddhism"},
		{"African Spirituality", "african-spirituality"},
		{"Custom spiritual belief", "custom-spiritual-belief"},
		{"Universal / Cosmic", "universal-/-cosmic"},
		{"Many\t  spaces\nhere", "many-spaces-here"},
		{"Universal", "universal"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, TraditionKey(tt.label))
		})
	}
}

func TestScriptureToken(t *testing.T) {
	assert.Equal(t, "anxious", ScriptureToken("anxious", "Very Worried"))
	assert.Equal(t, "very worried", ScriptureToken("", "Very Worried"))
	assert.Equal(t, "", ScriptureToken("", ""))
}
