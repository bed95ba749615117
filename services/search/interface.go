package search

import (
	"context"

	"tubescribe/models"
)

type Service interface {
	// Search returns caption-bearing videos matching the query, plus a
	// continuation token when more results exist.
	Search(ctx context.Context, query string, filters models.SearchFilters) ([]models.VideoSummary, string, error)

	// Titles resolves title and description for a set of ids in one
	// batched detail call.
	Titles(ctx context.Context, ids []string) (map[string]models.VideoMeta, error)
}

type Config struct {
	// RelevanceLanguage biases search results toward one language.
	RelevanceLanguage string `json:"relevance_language"`
}
