package services

//go:generate mockgen -source=queue.go -destination=queue_mock.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
	"github.com/sourcegraph/conc/pool"
)

// RankedStreamReader lists a creator's entries annotated for a viewer.
type RankedStreamReader interface {
	ListRanked(ctx context.Context, creatorID, viewerID uuid.UUID, includePlayed bool) ([]models.RankedStream, error)
}

// CurrentStreamReader reads the per-creator pointer.
type CurrentStreamReader interface {
	Get(ctx context.Context, creatorID uuid.UUID) (*models.CurrentStream, error)
}

// UserExistenceChecker checks that a user id refers to a known user.
type UserExistenceChecker interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}

// QueueService builds the polled view of a creator's queue.
type QueueService struct {
	streams RankedStreamReader
	current CurrentStreamReader
	users   UserExistenceChecker
}

// NewQueueService creates a new QueueService.
func NewQueueService(streams RankedStreamReader, current CurrentStreamReader, users UserExistenceChecker) *QueueService {
	return &QueueService{
		streams: streams,
		current: current,
		users:   users,
	}
}

// List returns the creator's unplayed entries ranked by votes, the entry currently playing,
// and whether the viewer owns the queue.
func (s *QueueService) List(ctx context.Context, creatorID, viewerID uuid.UUID) (*models.QueueState, error) {
	exists, err := s.users.Exists(ctx, creatorID)
	if err != nil {
		logger.Log.Errorw("failed to check creator", "creatorID", creatorID, "error", err)
		return nil, err
	}
	if !exists {
		return nil, ErrCreatorNotFound
	}

	state := &models.QueueState{IsCreator: creatorID == viewerID}

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		streams, err := s.streams.ListRanked(ctx, creatorID, viewerID, false)
		state.Streams = streams
		return err
	})
	p.Go(func(ctx context.Context) error {
		current, err := s.current.Get(ctx, creatorID)
		state.ActiveStream = current
		return err
	})
	if err := p.Wait(); err != nil {
		logger.Log.Errorw("failed to load queue", "creatorID", creatorID, "viewerID", viewerID, "error", err)
		return nil, err
	}

	return state, nil
}

// ListMine returns every entry of the user's own queue, played ones included.
func (s *QueueService) ListMine(ctx context.Context, userID uuid.UUID) ([]models.RankedStream, error) {
	streams, err := s.streams.ListRanked(ctx, userID, userID, true)
	if err != nil {
		logger.Log.Errorw("failed to list own streams", "userID", userID, "error", err)
		return nil, err
	}
	return streams, nil
}
