package services

//go:generate mockgen -source=vote.go -destination=vote_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
	"github.com/sbilibin2017/gw-stream-queue/internal/repositories"
)

// UpvoteStore adds and removes (user, stream) votes.
type UpvoteStore interface {
	Create(ctx context.Context, userID, streamID uuid.UUID) (bool, error)
	Delete(ctx context.Context, userID, streamID uuid.UUID) (bool, error)
}

// VoteService toggles upvotes.
type VoteService struct {
	upvotes     UpvoteStore
	kafkaWriter KafkaWriter
}

// NewVoteService creates a new VoteService.
func NewVoteService(upvotes UpvoteStore, kafkaWriter KafkaWriter) *VoteService {
	return &VoteService{
		upvotes:     upvotes,
		kafkaWriter: kafkaWriter,
	}
}

// Toggle removes the user's vote on the stream if present, otherwise adds it.
// It reports whether the user has a vote afterwards.
func (s *VoteService) Toggle(ctx context.Context, userID, streamID uuid.UUID) (bool, error) {
	removed, err := s.upvotes.Delete(ctx, userID, streamID)
	if err != nil {
		logger.Log.Errorw("failed to remove upvote", "userID", userID, "streamID", streamID, "error", err)
		return false, err
	}
	if removed {
		publishEvent(ctx, s.kafkaWriter, models.EventUpvoteRemoved, uuid.Nil, streamID, userID)
		return false, nil
	}

	created, err := s.upvotes.Create(ctx, userID, streamID)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, ErrStreamNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to add upvote", "userID", userID, "streamID", streamID, "error", err)
		return false, err
	}
	// A concurrent toggle may have inserted first; the vote exists either way.
	if created {
		publishEvent(ctx, s.kafkaWriter, models.EventUpvoteAdded, uuid.Nil, streamID, userID)
	}
	return true, nil
}

// Unvote removes the user's vote on the stream if there is one.
func (s *VoteService) Unvote(ctx context.Context, userID, streamID uuid.UUID) error {
	removed, err := s.upvotes.Delete(ctx, userID, streamID)
	if err != nil {
		logger.Log.Errorw("failed to remove upvote", "userID", userID, "streamID", streamID, "error", err)
		return err
	}
	if removed {
		publishEvent(ctx, s.kafkaWriter, models.EventUpvoteRemoved, uuid.Nil, streamID, userID)
	}
	return nil
}
