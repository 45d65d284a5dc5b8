package services

//go:generate mockgen -source=playback.go -destination=playback_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
	"github.com/sbilibin2017/gw-stream-queue/internal/repositories"
)

// Transactor runs a unit of work atomically.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PlaybackStreamReader finds entries for playback transitions.
type PlaybackStreamReader interface {
	NextCandidate(ctx context.Context, creatorID uuid.UUID) (*models.StreamDB, error)
	GetByOwner(ctx context.Context, ownerID, streamID uuid.UUID) (*models.StreamDB, error)
}

// PlaybackStreamWriter flags entries as played.
type PlaybackStreamWriter interface {
	MarkPlayed(ctx context.Context, ownerID, streamID uuid.UUID, ts time.Time) error
}

// CurrentStreamStore owns the per-creator pointer.
type CurrentStreamStore interface {
	Lock(ctx context.Context, creatorID uuid.UUID) error
	Get(ctx context.Context, creatorID uuid.UUID) (*models.CurrentStream, error)
	Upsert(ctx context.Context, creatorID, streamID uuid.UUID) error
	Delete(ctx context.Context, creatorID uuid.UUID) error
}

// PlaybackService moves a creator's "now playing" pointer through the queue.
//
// The pointer is either absent or references an entry of the same creator.
// Advance flips the entry it leaves to played, never the one it selects, so
// after an advance the pointer references an unplayed entry.
type PlaybackService struct {
	tx          Transactor
	reader      PlaybackStreamReader
	writer      PlaybackStreamWriter
	current     CurrentStreamStore
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewPlaybackService creates a new PlaybackService.
func NewPlaybackService(
	tx Transactor,
	reader PlaybackStreamReader,
	writer PlaybackStreamWriter,
	current CurrentStreamStore,
	kafkaWriter KafkaWriter,
) *PlaybackService {
	return &PlaybackService{
		tx:          tx,
		reader:      reader,
		writer:      writer,
		current:     current,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// Advance marks the current entry played and points the creator's queue at the
// highest ranked unplayed entry. Returns ErrQueueEmpty, with the pointer removed,
// when nothing is left.
func (s *PlaybackService) Advance(ctx context.Context, creatorID uuid.UUID) (*models.StreamDB, error) {
	var next *models.StreamDB

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.current.Lock(ctx, creatorID); err != nil {
			return err
		}

		current, err := s.current.Get(ctx, creatorID)
		if err != nil {
			return err
		}
		if current != nil {
			err := s.writer.MarkPlayed(ctx, creatorID, current.StreamID, s.now())
			if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
		}

		next, err = s.reader.NextCandidate(ctx, creatorID)
		if err != nil {
			return err
		}
		if next == nil {
			return s.current.Delete(ctx, creatorID)
		}
		return s.current.Upsert(ctx, creatorID, next.StreamID)
	})
	if err != nil {
		logger.Log.Errorw("failed to advance queue", "creatorID", creatorID, "error", err)
		return nil, err
	}

	if next == nil {
		publishEvent(ctx, s.kafkaWriter, models.EventPlaybackQueueDone, creatorID, uuid.Nil, creatorID)
		return nil, ErrQueueEmpty
	}

	publishEvent(ctx, s.kafkaWriter, models.EventPlaybackAdvanced, creatorID, next.StreamID, creatorID)
	return next, nil
}

// PlayNow makes one of the creator's entries current immediately, bypassing ranking,
// and marks it played.
func (s *PlaybackService) PlayNow(ctx context.Context, creatorID, streamID uuid.UUID) (*models.StreamDB, error) {
	var stream *models.StreamDB

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.current.Lock(ctx, creatorID); err != nil {
			return err
		}

		var err error
		stream, err = s.reader.GetByOwner(ctx, creatorID, streamID)
		if err != nil {
			return err
		}

		ts := s.now()
		if err := s.writer.MarkPlayed(ctx, creatorID, streamID, ts); err != nil {
			return err
		}
		stream.Played = true
		stream.PlayedTs = &ts

		return s.current.Upsert(ctx, creatorID, streamID)
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrStreamNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to play stream now", "creatorID", creatorID, "streamID", streamID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, models.EventPlaybackPlayNow, creatorID, streamID, creatorID)
	return stream, nil
}

// ClearCurrent removes the creator's pointer without marking anything played.
func (s *PlaybackService) ClearCurrent(ctx context.Context, creatorID uuid.UUID) error {
	if err := s.current.Delete(ctx, creatorID); err != nil {
		logger.Log.Errorw("failed to clear current stream", "creatorID", creatorID, "error", err)
		return err
	}

	publishEvent(ctx, s.kafkaWriter, models.EventPlaybackCleared, creatorID, uuid.Nil, creatorID)
	return nil
}

// MarkPlayed flags one of the owner's entries as played.
func (s *PlaybackService) MarkPlayed(ctx context.Context, ownerID, streamID uuid.UUID) error {
	err := s.writer.MarkPlayed(ctx, ownerID, streamID, s.now())
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrStreamNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to mark stream played", "ownerID", ownerID, "streamID", streamID, "error", err)
		return err
	}

	publishEvent(ctx, s.kafkaWriter, models.EventStreamPlayed, ownerID, streamID, ownerID)
	return nil
}
