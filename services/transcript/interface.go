package transcript

import (
	"context"
	"time"
)

// Source identifies the video a transcript is being resolved for. Title and
// description ride along for the placeholder strategy.
type Source struct {
	ID          string
	Title       string
	Description string
}

// Result is the outcome of a successful strategy attempt. Synthetic marks
// fabricated placeholder text so it is never mistaken for a real transcript.
type Result struct {
	Text      string
	Synthetic bool
}

// Strategy is one way of acquiring caption text for a video. A nil result
// with a nil error means the strategy has nothing for this video; errors are
// absorbed by the chain, which advances either way.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, src Source) (*Result, error)
}

// Resolver runs an ordered strategy list until one produces text.
type Resolver interface {
	Resolve(ctx context.Context, src Source) *Result
}

type Config struct {
	// APIBaseURL is the third-party transcript service endpoint.
	APIBaseURL string `json:"api_base_url"`

	// TimedTextLang is requested from the public timed-text endpoint.
	TimedTextLang string `json:"timed_text_lang"`

	// RequestTimeout applies to each strategy's remote call.
	RequestTimeout time.Duration `json:"request_timeout"`

	// EnableSynthetic appends the last-resort placeholder strategy.
	EnableSynthetic bool `json:"enable_synthetic"`
}
