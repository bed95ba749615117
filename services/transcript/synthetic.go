package transcript

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"
)

// synthetic is the last-resort strategy: it fabricates transcript-shaped
// filler from the video's own title and description keywords so the batch
// pipeline always produces output. Results are marked Synthetic and must
// surface that flag to the user; they are never cached or archived.
type synthetic struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSynthetic() *synthetic {
	return &synthetic{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func newSyntheticWithSource(src rand.Source) *synthetic {
	return &synthetic{rng: rand.New(src)}
}

func (s *synthetic) Name() string { return "synthetic" }

var wordRe = regexp.MustCompile(`[A-Za-z]{4,}`)

var fillerPhrases = []string{
	"so today we are going to talk about %s",
	"the interesting thing about %s is how often it comes up",
	"let me give you an example involving %s",
	"a lot of people ask about %s",
	"which brings us back to %s",
	"and that is really the key point about %s",
}

var genericWords = []string{"content", "video", "topic", "discussion", "subject"}

func (s *synthetic) Attempt(ctx context.Context, src Source) (*Result, error) {
	words := keywords(src.Title + " " + src.Description)
	if len(words) == 0 {
		words = genericWords
	}

	// The chain is shared across batch goroutines; rand.Rand is not.
	s.mu.Lock()
	segments := 8 + s.rng.Intn(8)
	parts := make([]string, 0, segments)
	for i := 0; i < segments; i++ {
		phrase := fillerPhrases[s.rng.Intn(len(fillerPhrases))]
		word := words[s.rng.Intn(len(words))]
		parts = append(parts, fmt.Sprintf(phrase, word))
	}
	s.mu.Unlock()

	return &Result{
		Text:      strings.Join(parts, " "),
		Synthetic: true,
	}, nil
}

func keywords(text string) []string {
	matches := wordRe.FindAllString(strings.ToLower(text), -1)

	seen := make(map[string]struct{}, len(matches))
	words := make([]string, 0, len(matches))
	for _, word := range matches {
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return words
}
