package repository

import (
	"context"

	"tubescribe/models"
)

// SettingsRepository persists single string values under fixed keys.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// TranscriptRepository caches resolved transcripts keyed by video id.
type TranscriptRepository interface {
	Find(ctx context.Context, videoID string) (*models.CachedTranscript, error)
	Save(ctx context.Context, transcript *models.CachedTranscript) error
}
