package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookups(t *testing.T) {
	t.Run("religion", func(t *testing.T) {
		b, ok := Religion("buddhism")
		assert.True(t, ok)
		assert.Equal(t, "Buddhism", b.Label)
		assert.Equal(t, "Inner wisdom", b.Address)
	})

	t.Run("spiritual path", func(t *testing.T) {
		b, ok := SpiritualPath("nature-centered")
		assert.True(t, ok)
		assert.Equal(t, "Mother Earth / Universe", b.Address)
	})

	t.Run("religion key is not a spiritual path", func(t *testing.T) {
		_, ok := SpiritualPath("islam")
		assert.False(t, ok)
	})

	t.Run("unknown keys", func(t *testing.T) {
		_, ok := Emotion("ecstatic")
		assert.False(t, ok)
		_, ok = Tone("")
		assert.False(t, ok)
	})

	t.Run("option labels", func(t *testing.T) {
		e, _ := Emotion("seeking-guidance")
		assert.Equal(t, "Seeking Guidance", e.Label)
		tone, _ := Tone("formal")
		assert.Equal(t, "Formal / Sacred", tone.Label)
		l, _ := Length("extended")
		assert.Equal(t, "A deep, contemplative prayer", l.Description)
	})
}

func TestCatalogsAreCopies(t *testing.T) {
	list := Religions()
	list[0].Label = "changed"

	b, _ := Religion(list[0].Key)
	assert.Equal(t, "Christianity", b.Label)
}

func TestCatalogKeysUnique(t *testing.T) {
	for name, keys := range map[string][]string{
		"religions":  beliefKeys(Religions()),
		"paths":      beliefKeys(SpiritualPaths()),
		"emotions":   optionKeys(Emotions()),
		"intentions": optionKeys(Intentions()),
		"tones":      optionKeys(Tones()),
		"lengths":    optionKeys(Lengths()),
		"types":      optionKeys(PrayerTypes()),
	} {
		seen := make(map[string]bool)
		for _, k := range keys {
			assert.False(t, seen[k], "%s: duplicate key %q", name, k)
			seen[k] = true
		}
	}
}

func TestTraditionLabel(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"universal", "Universal"},
		{"african-spirituality", "African Spirituality"},
		{"inner-self-mindfulness", "Inner-self / Mindfulness"},
		{"something-else", "something-else"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, TraditionLabel(tt.key))
		})
	}
}

func beliefKeys(list []Belief) []string {
	out := make([]string, len(list))
	for i, b := range list {
		out[i] = b.Key
	}
	return out
}

func optionKeys(list []Option) []string {
	out := make([]string, len(list))
	for i, o := range list {
		out[i] = o.Key
	}
	return out
}
