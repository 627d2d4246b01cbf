// Package prompt assembles the generation instruction from resolved context
// and recovers the prayer from the model's reply.
package prompt

import (
	"fmt"
	"strings"

	"github.com/abdulachik/selah/internal/catalog"
	"github.com/abdulachik/selah/internal/resolver"
)

// Generation settings sent with every request.
const (
	MaxOutputTokens = 1500
	Temperature     = 0.85
	TopP            = 0.9
)

// Context is everything the instruction document is built from.
type Context struct {
	Name             string
	Belief           resolver.Belief
	Emotion          string
	Intention        string
	Tone             string
	Length           string
	PrayerType       string
	FamilyMembers    []string
	GroupDescription string
}

// Build renders the instruction document. It is a pure function of c.
func Build(c Context) string {
	return fmt.Sprintf(Template,
		NameInstruction(c.Name),
		BeliefInstruction(c.Belief),
		PrayerTypeInstruction(c.PrayerType, c.FamilyMembers, c.GroupDescription),
		c.Emotion,
		c.Intention,
		c.Tone,
		c.Length,
	)
}

// NameInstruction permits the name when given, otherwise states anonymity.
func NameInstruction(name string) string {
	if name == "" {
		return AnonymousInstruction
	}
	return fmt.Sprintf(NamedInstruction, name)
}

// BeliefInstruction quotes a custom description verbatim or names the
// tradition and its address form.
func BeliefInstruction(b resolver.Belief) string {
	if b.IsCustom() {
		return fmt.Sprintf(CustomBeliefInstruction, b.CustomDescription)
	}
	return fmt.Sprintf(TraditionBeliefInstruction, b.TraditionLabel, b.AddressForm)
}

// PrayerTypeInstruction selects the register for self, family and group
// prayers. A family prayer without members is treated as personal.
func PrayerTypeInstruction(prayerType string, familyMembers []string, groupDescription string) string {
	switch {
	case prayerType == catalog.PrayerFamily && len(familyMembers) > 0:
		return fmt.Sprintf(FamilyInstruction, strings.Join(familyMembers, ", "))
	case prayerType == catalog.PrayerGroup:
		group := groupDescription
		if group == "" {
			group = DefaultGroup
		}
		return fmt.Sprintf(GroupInstruction, group)
	default:
		return SelfInstruction
	}
}

// Explanation renders the scripture explanation with lower-cased labels.
func Explanation(emotion, intention string) string {
	return fmt.Sprintf(ExplanationTemplate, strings.ToLower(emotion), strings.ToLower(intention))
}
