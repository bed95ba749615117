package transcript

import (
	"testing"

	"google.golang.org/api/youtube/v3"
)

func track(lang string) *youtube.Caption {
	return &youtube.Caption{Snippet: &youtube.CaptionSnippet{Language: lang}}
}

func TestPreferredTrack(t *testing.T) {
	tests := []struct {
		name     string
		tracks   []*youtube.Caption
		expected string
	}{
		{
			name:     "exact en wins",
			tracks:   []*youtube.Caption{track("de"), track("en"), track("fr")},
			expected: "en",
		},
		{
			name:     "en-US wins",
			tracks:   []*youtube.Caption{track("ja"), track("en-US")},
			expected: "en-US",
		},
		{
			name:     "first track when no english",
			tracks:   []*youtube.Caption{track("es"), track("pt")},
			expected: "es",
		},
		{
			name:     "en-GB is not an exact match",
			tracks:   []*youtube.Caption{track("en-GB"), track("ko")},
			expected: "en-GB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preferredTrack(tt.tracks)
			if got == nil {
				t.Fatal("expected a track, got nil")
			}
			if got.Snippet.Language != tt.expected {
				t.Errorf("expected language %q, got %q", tt.expected, got.Snippet.Language)
			}
		})
	}
}

func TestPreferredTrackEmpty(t *testing.T) {
	if got := preferredTrack(nil); got != nil {
		t.Errorf("expected nil for empty track list, got %+v", got)
	}
}
