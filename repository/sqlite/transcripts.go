package sqlite

import (
	"context"
	"database/sql"
	"time"

	"tubescribe/errors"
	"tubescribe/models"
)

const (
	getTranscriptQuery = `
        SELECT video_id, title, text, created_at, updated_at
        FROM transcripts WHERE video_id = ?
    `

	upsertTranscriptQuery = `
        INSERT INTO transcripts (video_id, title, text, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(video_id) DO UPDATE SET
            title = excluded.title,
            text = excluded.text,
            updated_at = excluded.updated_at
    `
)

type TranscriptRepository struct {
	db *sql.DB
}

func NewTranscriptRepository(db *sql.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

func (r *TranscriptRepository) Find(ctx context.Context, videoID string) (*models.CachedTranscript, error) {
	const op = "TranscriptRepository.Find"

	transcript := &models.CachedTranscript{}
	err := r.db.QueryRowContext(ctx, getTranscriptQuery, videoID).Scan(
		&transcript.VideoID,
		&transcript.Title,
		&transcript.Text,
		&transcript.CreatedAt,
		&transcript.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NotFound(op, nil, "Transcript not cached")
	}
	if err != nil {
		return nil, errors.Internal(op, err, "Failed to query transcript")
	}

	return transcript, nil
}

func (r *TranscriptRepository) Save(ctx context.Context, transcript *models.CachedTranscript) error {
	const op = "TranscriptRepository.Save"

	for i := 0; i < 3; i++ { // Simple retry logic
		err := r.save(ctx, transcript)
		if err == nil {
			return nil
		}
		if !isLockError(err) {
			return errors.Internal(op, err, "Failed to save transcript")
		}
		time.Sleep(time.Second * time.Duration(i+1))
	}

	return errors.Internal(op, nil, "Failed after retries")
}

func (r *TranscriptRepository) save(ctx context.Context, transcript *models.CachedTranscript) error {
	_, err := r.db.ExecContext(ctx, upsertTranscriptQuery,
		transcript.VideoID,
		transcript.Title,
		transcript.Text,
		transcript.CreatedAt,
		transcript.UpdatedAt,
	)
	return err
}
