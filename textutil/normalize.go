package textutil

import (
	"html"
	"regexp"
	"strings"

	"tubescribe/models"
)

// NoTranscript is returned for input that normalizes to nothing.
const NoTranscript = "No transcript available"

// tagRe matches residual markup tags sometimes embedded in caption text
// (<font>, <c>, <i>, line breaks encoded as <br/>).
var tagRe = regexp.MustCompile(`<[^>]+>`)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize flattens a raw caption payload into clean plain text: entities
// decoded, tags stripped, whitespace runs collapsed to single spaces.
func Normalize(raw string) string {
	s := normalizeFragment(raw)
	if s == "" {
		return NoTranscript
	}
	return s
}

// NormalizeItems flattens timed segments into a single line of text. Timing
// fields are dropped; the output carries no timestamps.
func NormalizeItems(items []models.TranscriptItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if s := normalizeFragment(item.Text); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return NoTranscript
	}
	return strings.Join(parts, " ")
}

func normalizeFragment(raw string) string {
	s := html.UnescapeString(raw)
	s = tagRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
