package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "reserved characters replaced",
			input:    `what/is\this:a*title?"no"<yes>|maybe`,
			expected: "what_is_this_a_title__no__yes__maybe",
		},
		{
			name:     "whitespace runs become single underscore",
			input:    "apple   keynote \t 2024",
			expected: "apple_keynote_2024",
		},
		{
			name:     "plain title unchanged",
			input:    "interview",
			expected: "interview",
		},
		{
			name:     "truncated to fifty characters",
			input:    strings.Repeat("a", 80),
			expected: strings.Repeat("a", 50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeFilenameIdempotent(t *testing.T) {
	inputs := []string{
		"a normal title",
		`sla/sh and \backslash`,
		strings.Repeat("word ", 30),
		"",
	}

	for _, input := range inputs {
		once := SanitizeFilename(input)
		twice := SanitizeFilename(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestSanitizeFilenameBounds(t *testing.T) {
	inputs := []string{
		strings.Repeat("x", 200),
		strings.Repeat("a b", 60),
		"short",
	}

	for _, input := range inputs {
		got := SanitizeFilename(input)
		if len([]rune(got)) > 50 {
			t.Errorf("SanitizeFilename(%q) length %d exceeds 50", input, len([]rune(got)))
		}
		if strings.ContainsAny(got, `/\:*?"<>|`) {
			t.Errorf("SanitizeFilename(%q) = %q still contains reserved characters", input, got)
		}
	}
}
