package prompt

import (
	"regexp"
	"strings"
)

var prayerPattern = regexp.MustCompile(
	regexp.QuoteMeta(StartMarker) + `\s*([\s\S]*?)\s*` + regexp.QuoteMeta(EndMarker),
)

// ExtractPrayer returns the text between the first pair of markers, trimmed.
// When the model ignored the format it returns the whole reply, trimmed.
func ExtractPrayer(raw string) string {
	if m := prayerPattern.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}
