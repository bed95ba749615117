// Package yt wraps the YouTube Data API v3 client. The service is rebuilt
// whenever the configured API key changes, and all callers share one
// outbound rate limiter.
package yt

import (
	"context"
	"sync"

	"tubescribe/config"
	"tubescribe/errors"
	"tubescribe/services/credential"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type Factory struct {
	creds   *credential.Service
	limiter *rate.Limiter

	mu      sync.Mutex
	key     string
	service *youtube.Service
}

func NewFactory(creds *credential.Service, cfg config.YouTubeConfig) *Factory {
	return &Factory{
		creds:   creds,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}
}

// Service returns a Data API client for the currently configured key.
func (f *Factory) Service(ctx context.Context) (*youtube.Service, error) {
	const op = "yt.Factory.Service"

	key, err := f.creds.Key(ctx)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, errors.MissingCredential(op)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.service != nil && f.key == key {
		return f.service, nil
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(key))
	if err != nil {
		return nil, errors.Internal(op, err, "Failed to create YouTube client")
	}

	f.key = key
	f.service = service
	return service, nil
}

// Wait blocks until the shared limiter admits another Data API call.
func (f *Factory) Wait(ctx context.Context) error {
	return f.limiter.Wait(ctx)
}
