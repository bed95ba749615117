package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	os.Setenv("DB_PATH", "/tmp/tubescribe-test/data.db")
	os.Setenv("LOG_DIR", "/tmp/tubescribe-test/logs")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("READ_TIMEOUT", "10s")
	os.Setenv("BATCH_CONCURRENCY", "8")
	os.Setenv("TIMEDTEXT_LANG", "de")
	os.Setenv("YT_REQUESTS_PER_SECOND", "2.5")
	defer func() {
		os.Unsetenv("DB_PATH")
		os.Unsetenv("LOG_DIR")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("READ_TIMEOUT")
		os.Unsetenv("BATCH_CONCURRENCY")
		os.Unsetenv("TIMEDTEXT_LANG")
		os.Unsetenv("YT_REQUESTS_PER_SECOND")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ServerPort != "9090" {
		t.Errorf("expected 9090, got %s", cfg.ServerPort)
	}
	if cfg.ReadTimeout != 10*time.Second {
		t.Errorf("expected 10s, got %s", cfg.ReadTimeout)
	}
	if cfg.Batch.Concurrency != 8 {
		t.Errorf("expected 8, got %d", cfg.Batch.Concurrency)
	}
	if cfg.Transcript.TimedTextLang != "de" {
		t.Errorf("expected de, got %s", cfg.Transcript.TimedTextLang)
	}
	if cfg.YouTube.RequestsPerSecond != 2.5 {
		t.Errorf("expected 2.5, got %f", cfg.YouTube.RequestsPerSecond)
	}
	if cfg.Database.Path != "/tmp/tubescribe-test/data.db" {
		t.Errorf("expected /tmp/tubescribe-test/data.db, got %s", cfg.Database.Path)
	}
}

func TestLoadDefaults(t *testing.T) {
	os.Setenv("DB_PATH", "/tmp/tubescribe-test/data.db")
	os.Setenv("LOG_DIR", "/tmp/tubescribe-test/logs")
	defer func() {
		os.Unsetenv("DB_PATH")
		os.Unsetenv("LOG_DIR")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Batch.Concurrency != 4 {
		t.Errorf("expected default concurrency 4, got %d", cfg.Batch.Concurrency)
	}
	if cfg.Transcript.TimedTextLang != "en" {
		t.Errorf("expected default lang en, got %s", cfg.Transcript.TimedTextLang)
	}
	if !cfg.Transcript.EnableSynthetic {
		t.Error("expected synthetic strategy enabled by default")
	}
	if cfg.Spaces.Enabled {
		t.Error("expected spaces archival disabled by default")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := &Config{
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		LogDir:       "/tmp/tubescribe-test/logs",
		Database:     DatabaseConfig{Path: "/tmp/tubescribe-test/data.db"},
		YouTube:      YouTubeConfig{RequestsPerSecond: 1},
		Transcript: TranscriptConfig{
			APIBaseURL:     "https://example.com",
			RequestTimeout: time.Second,
		},
		Batch: BatchConfig{Concurrency: 0},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero batch concurrency")
	}
}
