package services

//go:generate mockgen -source=stream.go -destination=stream_mock.go -package=services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
	"github.com/sbilibin2017/gw-stream-queue/internal/repositories"
)

const (
	// DuplicateWindow is how long a video id blocks resubmission to the same queue.
	DuplicateWindow = 10 * time.Minute
	// MaxQueueLen is the entry count above which non-creators can no longer submit.
	MaxQueueLen = 20
)

// SubmissionGuardReader answers the checks run before a non-creator submission.
type SubmissionGuardReader interface {
	HasRecent(ctx context.Context, creatorID uuid.UUID, extractedID string, since time.Time) (bool, error)
	CountByCreator(ctx context.Context, creatorID uuid.UUID) (int, error)
}

// StreamWriter persists and removes queue entries.
type StreamWriter interface {
	Save(ctx context.Context, stream models.StreamDB) (*models.StreamDB, error)
	Delete(ctx context.Context, ownerID, streamID uuid.UUID) error
}

// MetadataCache stores looked up video metadata.
type MetadataCache interface {
	Get(ctx context.Context, videoID string) (*models.VideoMetadata, error)
	Set(ctx context.Context, meta models.VideoMetadata) error
}

// MetadataFetcher looks up video metadata from the video platform.
type MetadataFetcher interface {
	FetchVideo(ctx context.Context, videoID string) (*models.VideoMetadata, error)
}

// StreamService accepts submissions into creators' queues and removes entries.
type StreamService struct {
	users       UserExistenceChecker
	guard       SubmissionGuardReader
	writer      StreamWriter
	cache       MetadataCache
	fetcher     MetadataFetcher
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewStreamService creates a new StreamService.
func NewStreamService(
	users UserExistenceChecker,
	guard SubmissionGuardReader,
	writer StreamWriter,
	cache MetadataCache,
	fetcher MetadataFetcher,
	kafkaWriter KafkaWriter,
) *StreamService {
	return &StreamService{
		users:       users,
		guard:       guard,
		writer:      writer,
		cache:       cache,
		fetcher:     fetcher,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// Submit validates a link and adds it to the creator's queue.
//
// A creator adding to their own queue skips the duplicate and size checks.
func (s *StreamService) Submit(ctx context.Context, creatorID, submitterID uuid.UUID, link string) (*models.RankedStream, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, ErrInvalidInput
	}
	videoID, ok := ExtractVideoID(link)
	if !ok {
		return nil, ErrInvalidLink
	}

	exists, err := s.users.Exists(ctx, creatorID)
	if err != nil {
		logger.Log.Errorw("failed to check creator", "creatorID", creatorID, "error", err)
		return nil, err
	}
	if !exists {
		return nil, ErrCreatorNotFound
	}

	if submitterID != creatorID {
		if err := s.checkGuards(ctx, creatorID, videoID); err != nil {
			return nil, err
		}
	}

	meta, err := s.metadata(ctx, videoID)
	if err != nil {
		return nil, err
	}

	title := meta.Title
	if title == "" {
		title = DefaultTitle
	}
	thumbnail := pickThumbnail(meta.Thumbnails)

	saved, err := s.writer.Save(ctx, models.StreamDB{
		UserID:      creatorID,
		AddedBy:     submitterID,
		Type:        models.StreamTypeYoutube,
		URL:         sanitize(link),
		ExtractedID: videoID,
		Title:       sanitize(title),
		SmallImg:    thumbnail,
		BigImg:      thumbnail,
	})
	if err != nil {
		logger.Log.Errorw("failed to save stream", "creatorID", creatorID, "videoID", videoID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, models.EventStreamAdded, creatorID, saved.StreamID, submitterID)
	return &models.RankedStream{StreamDB: *saved}, nil
}

func (s *StreamService) checkGuards(ctx context.Context, creatorID uuid.UUID, videoID string) error {
	recent, err := s.guard.HasRecent(ctx, creatorID, videoID, s.now().Add(-DuplicateWindow))
	if err != nil {
		logger.Log.Errorw("failed to check recent submissions", "creatorID", creatorID, "videoID", videoID, "error", err)
		return err
	}
	if recent {
		return ErrDuplicateRecent
	}

	count, err := s.guard.CountByCreator(ctx, creatorID)
	if err != nil {
		logger.Log.Errorw("failed to count streams", "creatorID", creatorID, "error", err)
		return err
	}
	if count > MaxQueueLen {
		return ErrQueueFull
	}
	return nil
}

// metadata reads through the cache. Cache errors only cost a lookup.
func (s *StreamService) metadata(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	if s.cache != nil {
		meta, err := s.cache.Get(ctx, videoID)
		if err == nil {
			return meta, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("metadata cache read failed", "videoID", videoID, "error", err)
		}
	}

	meta, err := s.fetcher.FetchVideo(ctx, videoID)
	if err != nil {
		logger.Log.Errorw("failed to fetch video metadata", "videoID", videoID, "error", err)
		return nil, ErrMetadataUnavailable
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, *meta); err != nil {
			logger.Log.Warnw("metadata cache write failed", "videoID", videoID, "error", err)
		}
	}
	return meta, nil
}

// Remove deletes one of the owner's entries along with its votes and any pointer to it.
func (s *StreamService) Remove(ctx context.Context, ownerID, streamID uuid.UUID) error {
	err := s.writer.Delete(ctx, ownerID, streamID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrStreamNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to remove stream", "ownerID", ownerID, "streamID", streamID, "error", err)
		return err
	}

	publishEvent(ctx, s.kafkaWriter, models.EventStreamRemoved, ownerID, streamID, ownerID)
	return nil
}
