package credential

import (
	"context"
	"strings"
	"sync"

	"tubescribe/errors"
	"tubescribe/repository"

	"github.com/sirupsen/logrus"
)

// StorageKey is the fixed settings key the YouTube API key lives under.
const StorageKey = "youtube_api_key"

// Service holds the single configured API key: persisted in the settings
// repository, cached in memory after the first read. An empty value is a
// valid "not configured" state, not an error.
type Service struct {
	repo   repository.SettingsRepository
	logger *logrus.Logger

	mu     sync.RWMutex
	cached string
	loaded bool
}

func NewService(repo repository.SettingsRepository) *Service {
	return &Service{
		repo:   repo,
		logger: logrus.StandardLogger(),
	}
}

// Key returns the configured API key, or "" when none is set.
func (s *Service) Key(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.cached, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.cached, nil
	}

	value, err := s.repo.Get(ctx, StorageKey)
	if err != nil {
		if errors.IsNotFound(err) {
			s.cached = ""
			s.loaded = true
			return "", nil
		}
		return "", err
	}

	s.cached = value
	s.loaded = true
	return value, nil
}

// SetKey persists a new API key and replaces the in-memory copy.
func (s *Service) SetKey(ctx context.Context, key string) error {
	const op = "CredentialService.SetKey"

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.InvalidInput(op, nil, "API key is required")
	}

	if err := s.repo.Set(ctx, StorageKey, key); err != nil {
		return err
	}

	s.mu.Lock()
	s.cached = key
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("YouTube API key updated")
	return nil
}

// Configured reports whether an API key is available.
func (s *Service) Configured(ctx context.Context) bool {
	key, err := s.Key(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read API key")
		return false
	}
	return key != ""
}
