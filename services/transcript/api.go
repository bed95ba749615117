package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"tubescribe/httpclient"
	"tubescribe/models"
	"tubescribe/textutil"

	"github.com/pkg/errors"
)

// transcriptAPI queries a third-party transcript service that exposes
// timed segments as a JSON array.
type transcriptAPI struct {
	client  *httpclient.Client
	baseURL string
}

func newTranscriptAPI(client *httpclient.Client, baseURL string) *transcriptAPI {
	return &transcriptAPI{
		client:  client,
		baseURL: baseURL,
	}
}

func (a *transcriptAPI) Name() string { return "transcript_api" }

func (a *transcriptAPI) Attempt(ctx context.Context, src Source) (*Result, error) {
	endpoint := fmt.Sprintf("%s/transcript?video_id=%s", a.baseURL, url.QueryEscape(src.ID))

	resp, err := a.client.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("transcript API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading transcript API response")
	}

	items, err := parseSegments(body)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	text := textutil.NormalizeItems(items)
	if text == textutil.NoTranscript {
		return nil, nil
	}

	return &Result{Text: text}, nil
}

func parseSegments(body []byte) ([]models.TranscriptItem, error) {
	var items []models.TranscriptItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, errors.Wrap(err, "decoding transcript segments")
	}
	return items, nil
}
