// Package catalog holds the fixed option tables presented by the prayer wizard.
//
// The tables are read-only after package initialization and safe for concurrent
// use. Lookups return copies, so callers cannot mutate shared state.
package catalog

// Belief is a faith tradition or spiritual path the user can choose.
type Belief struct {
	Key     string `json:"value"`
	Label   string `json:"label"`
	Address string `json:"address"`
}

// Option is a keyed choice with a display label.
type Option struct {
	Key         string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Belief types accepted from the form.
const (
	BeliefReligion  = "religion"
	BeliefSpiritual = "spiritual"
	BeliefCustom    = "custom"
)

// Prayer types accepted from the form.
const (
	PrayerSelf   = "self"
	PrayerFamily = "family"
	PrayerGroup  = "group"
)

// UniversalTradition is the tradition key shared by tradition-agnostic content.
const UniversalTradition = "universal"

var religions = []Belief{
	{Key: "christianity", Label: "Christianity", Address: "God / Lord"},
	{Key: "islam", Label: "Islam", Address: "Allah"},
	{Key: "judaism", Label: "Judaism", Address: "HaShem"},
	{Key: "hinduism", Label: "Hinduism", Address: "The Divine"},
	{Key: "buddhism", Label: "Buddhism", Address: "Inner wisdom"},
	{Key: "african-spirituality", Label: "African Spirituality", Address: "Ancestors"},
	{Key: "sikhism", Label: "Sikhism", Address: "Waheguru"},
}

var spiritualPaths = []Belief{
	{Key: "ancestor-based", Label: "Ancestor-based", Address: "Ancestors"},
	{Key: "nature-centered", Label: "Nature-centered", Address: "Mother Earth / Universe"},
	{Key: "universal-cosmic", Label: "Universal / Cosmic", Address: "Universe / Creator"},
	{Key: "inner-self-mindfulness", Label: "Inner-self / Mindfulness", Address: "Inner light"},
}

var emotions = []Option{
	{Key: "grateful", Label: "Grateful"},
	{Key: "anxious", Label: "Anxious"},
	{Key: "mourning", Label: "Mourning"},
	{Key: "hopeful", Label: "Hopeful"},
	{Key: "seeking-guidance", Label: "Seeking Guidance"},
	{Key: "peaceful", Label: "Peaceful"},
}

var intentions = []Option{
	{Key: "gratitude", Label: "Gratitude"},
	{Key: "protection", Label: "Protection"},
	{Key: "healing", Label: "Healing"},
	{Key: "forgiveness", Label: "Forgiveness"},
	{Key: "strength", Label: "Strength"},
	{Key: "wisdom", Label: "Wisdom"},
	{Key: "success", Label: "Success"},
	{Key: "peace", Label: "Peace"},
}

var tones = []Option{
	{Key: "formal", Label: "Formal / Sacred"},
	{Key: "conversational", Label: "Conversational"},
	{Key: "poetic", Label: "Poetic"},
}

var lengths = []Option{
	{Key: "short", Label: "Short", Description: "A brief moment of reflection"},
	{Key: "medium", Label: "Medium", Description: "A heartfelt prayer"},
	{Key: "extended", Label: "Extended", Description: "A deep, contemplative prayer"},
}

var prayerTypes = []Option{
	{Key: PrayerSelf, Label: "Just Me", Description: "A personal prayer for yourself"},
	{Key: PrayerFamily, Label: "My Family", Description: "A prayer that includes your family members"},
	{Key: PrayerGroup, Label: "A Group", Description: "A communal prayer for a congregation or community"},
}

// Religions returns the religion catalog in display order.
func Religions() []Belief { return append([]Belief(nil), religions...) }

// SpiritualPaths returns the spiritual path catalog in display order.
func SpiritualPaths() []Belief { return append([]Belief(nil), spiritualPaths...) }

// Emotions returns the emotional state catalog.
func Emotions() []Option { return append([]Option(nil), emotions...) }

// Intentions returns the prayer intention catalog.
func Intentions() []Option { return append([]Option(nil), intentions...) }

// Tones returns the tone catalog.
func Tones() []Option { return append([]Option(nil), tones...) }

// Lengths returns the prayer length catalog.
func Lengths() []Option { return append([]Option(nil), lengths...) }

// PrayerTypes returns the prayer type catalog.
func PrayerTypes() []Option { return append([]Option(nil), prayerTypes...) }

// Religion looks up a religion by key.
func Religion(key string) (Belief, bool) { return findBelief(religions, key) }

// SpiritualPath looks up a spiritual path by key.
func SpiritualPath(key string) (Belief, bool) { return findBelief(spiritualPaths, key) }

// Emotion looks up an emotional state by key.
func Emotion(key string) (Option, bool) { return findOption(emotions, key) }

// Intention looks up an intention by key.
func Intention(key string) (Option, bool) { return findOption(intentions, key) }

// Tone looks up a tone by key.
func Tone(key string) (Option, bool) { return findOption(tones, key) }

// Length looks up a prayer length by key.
func Length(key string) (Option, bool) { return findOption(lengths, key) }

// PrayerType looks up a prayer type by key.
func PrayerType(key string) (Option, bool) { return findOption(prayerTypes, key) }

// TraditionLabel returns the display label for a tradition key as used by
// library prayers and scripture records. Unknown keys are returned unchanged.
func TraditionLabel(key string) string {
	if key == UniversalTradition {
		return "Universal"
	}
	if b, ok := Religion(key); ok {
		return b.Label
	}
	if b, ok := SpiritualPath(key); ok {
		return b.Label
	}
	return key
}

func findBelief(list []Belief, key string) (Belief, bool) {
	for _, b := range list {
		if b.Key == key {
			return b, true
		}
	}
	return Belief{}, false
}

func findOption(list []Option, key string) (Option, bool) {
	for _, o := range list {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}
