package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"tubescribe/errors"
	"tubescribe/models"
)

func testDB(t *testing.T) *SettingsRepository {
	t.Helper()
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"), 2)
	if err != nil {
		t.Fatalf("failed to init db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSettingsRepository(db)
}

func TestSettingsRoundTrip(t *testing.T) {
	repo := testDB(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "youtube_api_key", "secret-key"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	value, err := repo.Get(ctx, "youtube_api_key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if value != "secret-key" {
		t.Errorf("expected 'secret-key', got %q", value)
	}
}

func TestSettingsOverwrite(t *testing.T) {
	repo := testDB(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "youtube_api_key", "first"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := repo.Set(ctx, "youtube_api_key", "second"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	value, err := repo.Get(ctx, "youtube_api_key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if value != "second" {
		t.Errorf("expected 'second', got %q", value)
	}
}

func TestSettingsMissingKey(t *testing.T) {
	repo := testDB(t)

	_, err := repo.Get(context.Background(), "nonexistent")
	if !errors.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestTranscriptRoundTrip(t *testing.T) {
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"), 2)
	if err != nil {
		t.Fatalf("failed to init db: %v", err)
	}
	defer db.Close()

	repo := NewTranscriptRepository(db)
	ctx := context.Background()
	now := time.Now()

	saved := &models.CachedTranscript{
		VideoID:   "dQw4w9WgXcQ",
		Title:     "A Video",
		Text:      "hello world",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := repo.Find(ctx, "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if got.Text != "hello world" {
		t.Errorf("expected text 'hello world', got %q", got.Text)
	}
	if got.Title != "A Video" {
		t.Errorf("expected title 'A Video', got %q", got.Title)
	}

	_, err = repo.Find(ctx, "jNQXAC9IVRw")
	if !errors.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}
