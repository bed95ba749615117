package validation

import (
	"fmt"
	"regexp"
	"strings"

	"tubescribe/errors"
	"tubescribe/models"
)

// videoIDRe matches YouTube video ids: eleven characters from the URL-safe
// base64 alphabet.
var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

const maxBatchSize = 200

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuery rejects empty or whitespace-only search queries.
func (v *Validator) ValidateQuery(query string) error {
	const op = "Validator.ValidateQuery"

	if strings.TrimSpace(query) == "" {
		return errors.InvalidInput(op, nil, "Search query is required")
	}
	return nil
}

// ValidateFilters checks enum values on search filters.
func (v *Validator) ValidateFilters(f models.SearchFilters) error {
	const op = "Validator.ValidateFilters"

	switch f.Order {
	case models.OrderRelevance, models.OrderDate, models.OrderRating, models.OrderViewCount:
	default:
		return errors.InvalidInput(op, nil, fmt.Sprintf("Unknown sort order %q", f.Order))
	}

	switch f.Duration {
	case models.DurationAny, models.DurationShort, models.DurationMedium, models.DurationLong:
	default:
		return errors.InvalidInput(op, nil, fmt.Sprintf("Unknown duration bucket %q", f.Duration))
	}

	if f.MaxResults <= 0 || f.MaxResults > 50 {
		return errors.InvalidInput(op, nil, "max_results must be between 1 and 50")
	}

	return nil
}

// ValidateVideoIDs rejects empty selections and malformed ids.
func (v *Validator) ValidateVideoIDs(ids []string) error {
	const op = "Validator.ValidateVideoIDs"

	if len(ids) == 0 {
		return errors.InvalidInput(op, nil, "No videos selected")
	}
	if len(ids) > maxBatchSize {
		return errors.InvalidInput(op, nil, fmt.Sprintf("At most %d videos per batch", maxBatchSize))
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !videoIDRe.MatchString(id) {
			return errors.InvalidInput(op, nil, fmt.Sprintf("Invalid video id %q", id))
		}
		if _, dup := seen[id]; dup {
			return errors.InvalidInput(op, nil, fmt.Sprintf("Duplicate video id %q", id))
		}
		seen[id] = struct{}{}
	}

	return nil
}
