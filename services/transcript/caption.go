package transcript

import (
	"context"

	"tubescribe/yt"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/youtube/v3"
)

// captionProbe lists caption tracks through the Data API. Downloading a
// track body requires OAuth the service does not hold, so the probe only
// confirms that captions exist and which track would be preferred; it always
// defers to the next strategy. Track language selection lives here and
// nowhere else.
type captionProbe struct {
	factory *yt.Factory
	logger  *logrus.Logger
}

func newCaptionProbe(factory *yt.Factory) *captionProbe {
	return &captionProbe{
		factory: factory,
		logger:  logrus.StandardLogger(),
	}
}

func (p *captionProbe) Name() string { return "caption_probe" }

func (p *captionProbe) Attempt(ctx context.Context, src Source) (*Result, error) {
	client, err := p.factory.Service(ctx)
	if err != nil {
		return nil, err
	}

	if err := p.factory.Wait(ctx); err != nil {
		return nil, err
	}

	response, err := client.Captions.List([]string{"snippet"}, src.ID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	if track := preferredTrack(response.Items); track != nil {
		p.logger.WithFields(logrus.Fields{
			"video_id": src.ID,
			"language": track.Snippet.Language,
		}).Debug("Caption track available")
	}

	// Existence confirmed at most; content is behind an OAuth wall.
	return nil, nil
}

// preferredTrack picks the track to use if caption download ever becomes
// available: an exact en or en-US language tag wins, otherwise the first
// listed track.
func preferredTrack(tracks []*youtube.Caption) *youtube.Caption {
	if len(tracks) == 0 {
		return nil
	}

	for _, track := range tracks {
		if track.Snippet == nil {
			continue
		}
		if track.Snippet.Language == "en" || track.Snippet.Language == "en-US" {
			return track
		}
	}

	return tracks[0]
}
