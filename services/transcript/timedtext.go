package transcript

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"

	"tubescribe/httpclient"
	"tubescribe/textutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

const timedTextURL = "https://video.google.com/api/timedtext"

// timedText fetches captions from the unauthenticated timed-text endpoint.
// The response is an XML document of <text> nodes whose bodies are
// double-entity-encoded.
type timedText struct {
	client *httpclient.Client
	lang   string
}

func newTimedText(client *httpclient.Client, lang string) *timedText {
	return &timedText{
		client: client,
		lang:   lang,
	}
}

func (t *timedText) Name() string { return "timed_text" }

func (t *timedText) Attempt(ctx context.Context, src Source) (*Result, error) {
	endpoint := fmt.Sprintf("%s?lang=%s&v=%s", timedTextURL, url.QueryEscape(t.lang), url.QueryEscape(src.ID))

	resp, err := t.client.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("timed text endpoint returned status %d", resp.StatusCode)
	}

	text, err := extractTimedText(resp.Body)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}

	return &Result{Text: text}, nil
}

// extractTimedText pulls every text-bearing node out of the timed-text
// document, decodes entities per node, and joins with single spaces.
func extractTimedText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", errors.Wrap(err, "parsing timed text document")
	}

	var parts []string
	doc.Find("text").Each(func(_ int, sel *goquery.Selection) {
		// The HTML parser decodes one entity layer; the payload carries two.
		fragment := html.UnescapeString(sel.Text())
		if fragment = strings.TrimSpace(fragment); fragment != "" {
			parts = append(parts, fragment)
		}
	})

	if len(parts) == 0 {
		return "", nil
	}

	text := textutil.Normalize(strings.Join(parts, " "))
	if text == textutil.NoTranscript {
		return "", nil
	}
	return text, nil
}
