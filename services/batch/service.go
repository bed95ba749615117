package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tubescribe/errors"
	"tubescribe/models"
	"tubescribe/repository"
	"tubescribe/services/credential"
	"tubescribe/services/transcript"
	"tubescribe/textutil"

	"github.com/sirupsen/logrus"
)

const defaultFolder = "transcripts"

type service struct {
	creds    *credential.Service
	resolver transcript.Resolver
	meta     MetadataFetcher
	cache    repository.TranscriptRepository
	archiver Archiver
	config   Config
	logger   *logrus.Logger
	now      func() time.Time
}

// NewService builds the batch downloader. archiver may be nil when object
// storage is not configured.
func NewService(
	creds *credential.Service,
	resolver transcript.Resolver,
	meta MetadataFetcher,
	cache repository.TranscriptRepository,
	archiver Archiver,
	config Config,
) Service {
	return &service{
		creds:    creds,
		resolver: resolver,
		meta:     meta,
		cache:    cache,
		archiver: archiver,
		config:   config,
		logger:   logrus.StandardLogger(),
		now:      time.Now,
	}
}

func (s *service) DownloadAll(ctx context.Context, ids []string, query string) (*models.BatchResult, error) {
	const op = "BatchService.DownloadAll"

	if !s.creds.Configured(ctx) {
		return nil, errors.MissingCredential(op)
	}
	if len(ids) == 0 {
		return nil, errors.InvalidInput(op, nil, "No videos selected")
	}

	folder := folderName(query, s.now())
	logger := s.logger.WithFields(logrus.Fields{
		"operation": op,
		"folder":    folder,
		"count":     len(ids),
	})
	logger.Info("Starting batch download")

	metas, err := s.meta.Titles(ctx, ids)
	if err != nil {
		// Titles degrade to per-id fallbacks; the batch continues.
		logger.WithError(err).Warn("Batched title lookup failed")
		metas = map[string]models.VideoMeta{}
	}

	records := make([]models.TranscriptRecord, len(ids))
	sem := make(chan struct{}, s.config.Concurrency)
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			records[i] = s.process(ctx, id, metas[id], folder)
		}(i, id)
	}
	wg.Wait()

	result := &models.BatchResult{FolderName: folder, Records: records}
	logger.WithField("succeeded", result.SuccessCount()).Info("Batch download finished")
	return result, nil
}

// process resolves one video and never lets a failure escape: whatever goes
// wrong becomes a success=false record.
func (s *service) process(ctx context.Context, id string, meta models.VideoMeta, folder string) (record models.TranscriptRecord) {
	title := meta.Title
	if title == "" {
		title = fmt.Sprintf("Video %s", id)
	}

	filename := fmt.Sprintf("%s_%s.txt", textutil.SanitizeFilename(title), id)
	record = models.TranscriptRecord{
		VideoID:  id,
		Title:    title,
		Filename: filename,
		Path:     fmt.Sprintf("/%s/%s", folder, filename),
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.WithFields(logrus.Fields{
				"video_id": id,
				"panic":    r,
			}).Error("Recovered from panic while processing video")
			record.Success = false
			record.Transcript = ""
		}
	}()

	if cached, err := s.cache.Find(ctx, id); err == nil {
		record.Success = true
		record.Transcript = cached.Text
		return record
	}

	result := s.resolver.Resolve(ctx, transcript.Source{
		ID:          id,
		Title:       title,
		Description: meta.Description,
	})
	if result == nil {
		s.logger.WithField("video_id", id).Warn("No transcript resolved")
		return record
	}

	record.Success = true
	record.IsSynthetic = result.Synthetic
	record.Transcript = textutil.Normalize(result.Text)

	// Fabricated text never enters the cache or the archive.
	if !result.Synthetic {
		s.persist(ctx, id, title, record.Transcript)
	}

	return record
}

func (s *service) persist(ctx context.Context, id, title, text string) {
	now := s.now()
	err := s.cache.Save(ctx, &models.CachedTranscript{
		VideoID:   id,
		Title:     title,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.WithError(err).WithField("video_id", id).Warn("Failed to cache transcript")
	}

	if s.archiver != nil {
		if err := s.archiver.SaveTranscript(ctx, id, title, text); err != nil {
			s.logger.WithError(err).WithField("video_id", id).Warn("Failed to archive transcript")
		}
	}
}

// folderName derives the batch folder from the query, falling back to a
// fixed name for empty queries. The timestamp keeps repeat downloads apart.
func folderName(query string, now time.Time) string {
	stem := textutil.SanitizeFilename(query)
	if stem == "" {
		stem = defaultFolder
	}
	return fmt.Sprintf("%s_%s", stem, now.Format("20060102_150405"))
}
