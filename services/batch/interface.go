package batch

import (
	"context"

	"tubescribe/models"
)

type Service interface {
	// DownloadAll resolves a transcript for every id and returns one record
	// per id. Per-id failures become success=false records; only missing
	// credentials or an empty selection fail the whole call.
	DownloadAll(ctx context.Context, ids []string, query string) (*models.BatchResult, error)
}

// MetadataFetcher resolves titles for a batch of ids in one upstream call.
type MetadataFetcher interface {
	Titles(ctx context.Context, ids []string) (map[string]models.VideoMeta, error)
}

// Archiver persists successful transcripts to object storage.
type Archiver interface {
	SaveTranscript(ctx context.Context, videoID, title, text string) error
}

type Config struct {
	// Concurrency caps simultaneous per-video resolutions.
	Concurrency int `json:"concurrency"`
}
