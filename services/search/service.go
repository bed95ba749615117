package search

import (
	"context"
	"strconv"
	"strings"
	"time"

	"tubescribe/errors"
	"tubescribe/models"
	"tubescribe/yt"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/youtube/v3"
)

const (
	defaultDuration  = "PT0S"
	defaultViewCount = "0"
)

type service struct {
	factory *yt.Factory
	config  Config
	logger  *logrus.Logger
}

func NewService(factory *yt.Factory, config Config) Service {
	return &service{
		factory: factory,
		config:  config,
		logger:  logrus.StandardLogger(),
	}
}

// searchParams is the resolved parameter set for one search.list call.
// Empty fields are omitted from the request.
type searchParams struct {
	Query      string
	ChannelID  string
	Order      string
	Duration   string
	MaxResults int64
}

// buildParams applies the filter rules: order and duration are sent only
// when they differ from the API defaults, and a channel-scoped query moves
// into the channelId parameter.
func buildParams(query string, filters models.SearchFilters) searchParams {
	p := searchParams{
		Query:      query,
		MaxResults: filters.MaxResults,
	}

	if filters.ScopeToChannel {
		p.Query = ""
		p.ChannelID = query
	}
	if filters.Order != models.OrderRelevance {
		p.Order = filters.Order
	}
	if filters.Duration != models.DurationAny {
		p.Duration = filters.Duration
	}

	return p
}

func (s *service) Search(ctx context.Context, query string, filters models.SearchFilters) ([]models.VideoSummary, string, error) {
	const op = "SearchService.Search"

	if strings.TrimSpace(query) == "" {
		return nil, "", errors.InvalidInput(op, nil, "Search query is required")
	}

	client, err := s.factory.Service(ctx)
	if err != nil {
		return nil, "", err
	}

	logger := s.logger.WithFields(logrus.Fields{
		"operation": op,
		"query":     query,
	})

	params := buildParams(query, filters.WithDefaults())

	if err := s.factory.Wait(ctx); err != nil {
		return nil, "", errors.Internal(op, err, "Rate limiter interrupted")
	}

	call := client.Search.List([]string{"id", "snippet"}).
		Type("video").
		VideoCaption("closedCaption").
		MaxResults(params.MaxResults).
		RelevanceLanguage(s.config.RelevanceLanguage).
		Context(ctx)

	if params.ChannelID != "" {
		call = call.ChannelId(params.ChannelID)
	} else {
		call = call.Q(params.Query)
	}
	if params.Order != "" {
		call = call.Order(params.Order)
	}
	if params.Duration != "" {
		call = call.VideoDuration(params.Duration)
	}

	response, err := call.Do()
	if err != nil {
		logger.WithError(err).Error("Search request failed")
		return nil, "", errors.Upstream(op, err, "Failed to search for videos")
	}

	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}

	details, err := s.fetchDetails(ctx, client, ids)
	if err != nil {
		logger.WithError(err).Error("Detail lookup failed")
		return nil, "", errors.Upstream(op, err, "Failed to load video details")
	}

	videos := mergeSummaries(response.Items, details)

	logger.WithField("results", len(videos)).Info("Search completed")
	return videos, response.NextPageToken, nil
}

// videoDetail is the slice of videos.list output the summary needs.
type videoDetail struct {
	Duration  string
	ViewCount string
}

func (s *service) fetchDetails(ctx context.Context, client *youtube.Service, ids []string) (map[string]videoDetail, error) {
	if len(ids) == 0 {
		return map[string]videoDetail{}, nil
	}

	if err := s.factory.Wait(ctx); err != nil {
		return nil, err
	}

	response, err := client.Videos.List([]string{"contentDetails", "statistics"}).
		Id(strings.Join(ids, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	details := make(map[string]videoDetail, len(response.Items))
	for _, video := range response.Items {
		d := videoDetail{Duration: defaultDuration, ViewCount: defaultViewCount}
		if video.ContentDetails != nil && video.ContentDetails.Duration != "" {
			d.Duration = video.ContentDetails.Duration
		}
		if video.Statistics != nil {
			d.ViewCount = strconv.FormatUint(video.Statistics.ViewCount, 10)
		}
		details[video.Id] = d
	}

	return details, nil
}

// mergeSummaries left-joins search hits with their detail records. Hits
// without a detail record keep zero-value defaults; detail-only records are
// never surfaced.
func mergeSummaries(hits []*youtube.SearchResult, details map[string]videoDetail) []models.VideoSummary {
	videos := make([]models.VideoSummary, 0, len(hits))
	for _, hit := range hits {
		if hit.Id == nil || hit.Id.VideoId == "" || hit.Snippet == nil {
			continue
		}

		publishedAt, _ := time.Parse(time.RFC3339, hit.Snippet.PublishedAt)

		summary := models.VideoSummary{
			ID:           hit.Id.VideoId,
			Title:        hit.Snippet.Title,
			Description:  hit.Snippet.Description,
			ThumbnailURL: bestThumbnail(hit.Snippet.Thumbnails),
			ChannelTitle: hit.Snippet.ChannelTitle,
			PublishedAt:  publishedAt,
			Duration:     defaultDuration,
			ViewCount:    defaultViewCount,
		}

		if detail, ok := details[hit.Id.VideoId]; ok {
			summary.Duration = detail.Duration
			summary.ViewCount = detail.ViewCount
		}

		videos = append(videos, summary)
	}
	return videos
}

func (s *service) Titles(ctx context.Context, ids []string) (map[string]models.VideoMeta, error) {
	const op = "SearchService.Titles"

	if len(ids) == 0 {
		return map[string]models.VideoMeta{}, nil
	}

	client, err := s.factory.Service(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.factory.Wait(ctx); err != nil {
		return nil, errors.Internal(op, err, "Rate limiter interrupted")
	}

	response, err := client.Videos.List([]string{"snippet"}).
		Id(strings.Join(ids, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Upstream(op, err, "Failed to load video titles")
	}

	metas := make(map[string]models.VideoMeta, len(response.Items))
	for _, video := range response.Items {
		if video.Snippet == nil {
			continue
		}
		metas[video.Id] = models.VideoMeta{
			Title:       video.Snippet.Title,
			Description: video.Snippet.Description,
		}
	}

	return metas, nil
}

func bestThumbnail(thumbnails *youtube.ThumbnailDetails) string {
	if thumbnails == nil {
		return ""
	}

	if thumbnails.Maxres != nil {
		return thumbnails.Maxres.Url
	}
	if thumbnails.High != nil {
		return thumbnails.High.Url
	}
	if thumbnails.Medium != nil {
		return thumbnails.Medium.Url
	}
	if thumbnails.Default != nil {
		return thumbnails.Default.Url
	}

	return ""
}
