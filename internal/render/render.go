// Package render formats prayers and scripture as plain text.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ExcerptLength is the preview size used when listing library prayers.
const ExcerptLength = 120

// Scripture formats a passage with its attribution:
//
//	"text"
//
//	— source
func Scripture(text, source string) string {
	if source == "" {
		return fmt.Sprintf("\"%s\"", text)
	}
	return fmt.Sprintf("\"%s\"\n\n— %s", text, source)
}

// Prayer formats a composed prayer followed by its scripture, if any.
func Prayer(prayer, quote, source, explanation string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(prayer))
	if quote != "" {
		b.WriteString("\n\n")
		b.WriteString(Scripture(quote, source))
		if explanation != "" {
			b.WriteString("\n\n")
			b.WriteString(explanation)
		}
	}
	return b.String()
}

// Excerpt shortens text to at most maxLen runes, cutting at a word boundary
// and appending "...". Paragraph breaks are collapsed to spaces.
func Excerpt(text string, maxLen int) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	available := maxLen - 3
	if available <= 0 {
		return "..."[:min(maxLen, 3)]
	}

	runes := []rune(text)
	cut := available

	// Back up to a word boundary unless the cut already is one or the
	// boundary is too far back.
	if runes[available] != ' ' {
		if lastSpace := lastSpaceRune(runes[:available]); lastSpace > available/2 {
			cut = lastSpace
		}
	}

	return strings.TrimRight(string(runes[:cut]), " .,;:!?") + "..."
}

// lastSpaceRune returns the rune index of the last space in runes, or -1.
func lastSpaceRune(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

// Paragraphs splits text on blank lines, dropping empty paragraphs.
func Paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
