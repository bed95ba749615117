package transcript

import (
	"context"

	"tubescribe/httpclient"
	"tubescribe/yt"

	"github.com/sirupsen/logrus"
)

// Chain tries strategies in order and short-circuits on the first one that
// yields text. A miss (no result or an error) advances to the next strategy;
// nothing a single strategy does can fail the whole resolution.
type Chain struct {
	strategies []Strategy
	logger     *logrus.Logger
}

// NewChain assembles the production strategy order: caption probe,
// third-party transcript API, public timed text, then (when enabled) the
// synthetic placeholder.
func NewChain(factory *yt.Factory, config Config) *Chain {
	client := httpclient.New(config.RequestTimeout)

	strategies := []Strategy{
		newCaptionProbe(factory),
		newTranscriptAPI(client, config.APIBaseURL),
		newTimedText(client, config.TimedTextLang),
	}
	if config.EnableSynthetic {
		strategies = append(strategies, newSynthetic())
	}

	return newChain(strategies...)
}

func newChain(strategies ...Strategy) *Chain {
	return &Chain{
		strategies: strategies,
		logger:     logrus.StandardLogger(),
	}
}

func (c *Chain) Resolve(ctx context.Context, src Source) *Result {
	logger := c.logger.WithField("video_id", src.ID)

	for _, strategy := range c.strategies {
		result, err := strategy.Attempt(ctx, src)
		if err != nil {
			logger.WithError(err).WithField("strategy", strategy.Name()).
				Debug("Strategy failed, advancing")
			continue
		}
		if result == nil || result.Text == "" {
			continue
		}

		logger.WithFields(logrus.Fields{
			"strategy":  strategy.Name(),
			"synthetic": result.Synthetic,
			"length":    len(result.Text),
		}).Info("Transcript resolved")
		return result
	}

	logger.Info("All transcript strategies exhausted")
	return nil
}
