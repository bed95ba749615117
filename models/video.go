package models

import "time"

// VideoSummary is the merged view of one search hit plus its detail record.
// Built once by the search service and not mutated afterwards.
type VideoSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url"`
	ChannelTitle string    `json:"channel_title"`
	PublishedAt  time.Time `json:"published_at"`
	Duration     string    `json:"duration"`
	ViewCount    string    `json:"view_count"`
}

// TranscriptItem is a single timed caption segment as returned by an
// upstream source. Timing is discarded during normalization.
type TranscriptItem struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// TranscriptRecord is the per-video outcome of a batch download.
type TranscriptRecord struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Filename    string `json:"filename"`
	Path        string `json:"path"`
	Success     bool   `json:"success"`
	IsSynthetic bool   `json:"is_synthetic,omitempty"`
	Transcript  string `json:"transcript,omitempty"`
}

// BatchResult holds one record per requested video id, in request order.
type BatchResult struct {
	FolderName string             `json:"folder_name"`
	Records    []TranscriptRecord `json:"records"`
}

// SuccessCount returns how many records resolved a transcript.
func (b *BatchResult) SuccessCount() int {
	n := 0
	for _, r := range b.Records {
		if r.Success {
			n++
		}
	}
	return n
}

// Search sort orders accepted by the YouTube Data API.
const (
	OrderRelevance = "relevance"
	OrderDate      = "date"
	OrderRating    = "rating"
	OrderViewCount = "viewCount"
)

// Duration buckets accepted by the YouTube Data API.
const (
	DurationAny    = "any"
	DurationShort  = "short"
	DurationMedium = "medium"
	DurationLong   = "long"
)

const DefaultMaxResults = 25

type SearchFilters struct {
	MaxResults     int64  `json:"max_results"`
	Order          string `json:"order"`
	Duration       string `json:"duration"`
	ScopeToChannel bool   `json:"scope_to_channel"`
}

// WithDefaults fills zero values with the documented defaults.
func (f SearchFilters) WithDefaults() SearchFilters {
	if f.MaxResults <= 0 {
		f.MaxResults = DefaultMaxResults
	}
	if f.Order == "" {
		f.Order = OrderRelevance
	}
	if f.Duration == "" {
		f.Duration = DurationAny
	}
	return f
}

// VideoMeta is the minimal per-id metadata the batch downloader needs.
type VideoMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CachedTranscript is a previously resolved transcript persisted in the
// local database so repeat downloads skip the strategy chain.
type CachedTranscript struct {
	VideoID   string    `json:"video_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
