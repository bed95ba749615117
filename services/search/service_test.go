package search

import (
	"testing"

	"tubescribe/models"

	"google.golang.org/api/youtube/v3"
)

func TestBuildParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		filters  models.SearchFilters
		expected searchParams
	}{
		{
			name:    "defaults omit order and duration",
			query:   "apple keynote",
			filters: models.SearchFilters{}.WithDefaults(),
			expected: searchParams{
				Query:      "apple keynote",
				MaxResults: 25,
			},
		},
		{
			name:  "date order included",
			query: "apple keynote",
			filters: models.SearchFilters{
				MaxResults: 10,
				Order:      models.OrderDate,
				Duration:   models.DurationAny,
			},
			expected: searchParams{
				Query:      "apple keynote",
				Order:      models.OrderDate,
				MaxResults: 10,
			},
		},
		{
			name:  "duration bucket included",
			query: "lectures",
			filters: models.SearchFilters{
				MaxResults: 25,
				Order:      models.OrderRelevance,
				Duration:   models.DurationLong,
			},
			expected: searchParams{
				Query:      "lectures",
				Duration:   models.DurationLong,
				MaxResults: 25,
			},
		},
		{
			name:  "channel scope moves query to channel id",
			query: "UC_x5XG1OV2P6uZZ5FSM9Ttw",
			filters: models.SearchFilters{
				MaxResults:     25,
				Order:          models.OrderRelevance,
				Duration:       models.DurationAny,
				ScopeToChannel: true,
			},
			expected: searchParams{
				ChannelID:  "UC_x5XG1OV2P6uZZ5FSM9Ttw",
				MaxResults: 25,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildParams(tt.query, tt.filters)
			if got != tt.expected {
				t.Errorf("buildParams() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func searchHit(id, title string) *youtube.SearchResult {
	return &youtube.SearchResult{
		Id: &youtube.ResourceId{VideoId: id},
		Snippet: &youtube.SearchResultSnippet{
			Title:        title,
			Description:  "description of " + title,
			ChannelTitle: "Test Channel",
			PublishedAt:  "2024-06-01T12:00:00Z",
		},
	}
}

func TestMergeSummaries(t *testing.T) {
	hits := []*youtube.SearchResult{
		searchHit("dQw4w9WgXcQ", "First"),
		searchHit("jNQXAC9IVRw", "Second"),
	}
	details := map[string]videoDetail{
		"dQw4w9WgXcQ": {Duration: "PT4M13S", ViewCount: "1000000"},
	}

	videos := mergeSummaries(hits, details)

	if len(videos) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(videos))
	}

	if videos[0].Duration != "PT4M13S" || videos[0].ViewCount != "1000000" {
		t.Errorf("expected detail merge for first hit, got %+v", videos[0])
	}

	// Hit without a detail record keeps defaults instead of being dropped.
	if videos[1].ID != "jNQXAC9IVRw" {
		t.Fatalf("expected second hit to survive, got %+v", videos[1])
	}
	if videos[1].Duration != "PT0S" {
		t.Errorf("expected default duration PT0S, got %q", videos[1].Duration)
	}
	if videos[1].ViewCount != "0" {
		t.Errorf("expected default view count 0, got %q", videos[1].ViewCount)
	}
}

func TestMergeSummariesSkipsMalformedHits(t *testing.T) {
	hits := []*youtube.SearchResult{
		{Id: &youtube.ResourceId{}},
		{Snippet: &youtube.SearchResultSnippet{Title: "no id"}},
		searchHit("9bZkp7q19f0", "Valid"),
	}

	videos := mergeSummaries(hits, nil)

	if len(videos) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(videos))
	}
	if videos[0].ID != "9bZkp7q19f0" {
		t.Errorf("expected id 9bZkp7q19f0, got %q", videos[0].ID)
	}
}

func TestMergeSummariesDetailOnlyRecordsNotSurfaced(t *testing.T) {
	hits := []*youtube.SearchResult{searchHit("dQw4w9WgXcQ", "Only Hit")}
	details := map[string]videoDetail{
		"dQw4w9WgXcQ": {Duration: "PT1M", ViewCount: "5"},
		"jNQXAC9IVRw": {Duration: "PT2M", ViewCount: "9"},
	}

	videos := mergeSummaries(hits, details)

	if len(videos) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(videos))
	}
	if videos[0].ID != "dQw4w9WgXcQ" {
		t.Errorf("unexpected id %q", videos[0].ID)
	}
}
