package transcript

import (
	"strings"
	"testing"
)

func TestExtractTimedText(t *testing.T) {
	tests := []struct {
		name     string
		document string
		expected string
	}{
		{
			name: "text nodes joined with spaces",
			document: `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0" dur="2.5">hello there</text>
  <text start="2.5" dur="3">general viewers</text>
</transcript>`,
			expected: "hello there general viewers",
		},
		{
			name: "double-encoded entities decoded",
			document: `<transcript>
  <text start="0" dur="1">it&amp;#39;s working</text>
  <text start="1" dur="1">fish &amp;amp; chips</text>
</transcript>`,
			expected: "it's working fish & chips",
		},
		{
			name: "blank nodes skipped",
			document: `<transcript>
  <text start="0" dur="1">   </text>
  <text start="1" dur="1">only this</text>
</transcript>`,
			expected: "only this",
		},
		{
			name:     "empty document",
			document: `<transcript></transcript>`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractTimedText(strings.NewReader(tt.document))
			if err != nil {
				t.Fatalf("extractTimedText returned error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("extractTimedText() = %q, want %q", got, tt.expected)
			}
		})
	}
}
