package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
	"github.com/sbilibin2017/gw-stream-queue/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type playbackMocks struct {
	tx      *MockTransactor
	reader  *MockPlaybackStreamReader
	writer  *MockPlaybackStreamWriter
	current *MockCurrentStreamStore
}

func newPlaybackService(ctrl *gomock.Controller, now time.Time) (*PlaybackService, playbackMocks) {
	m := playbackMocks{
		tx:      NewMockTransactor(ctrl),
		reader:  NewMockPlaybackStreamReader(ctrl),
		writer:  NewMockPlaybackStreamWriter(ctrl),
		current: NewMockCurrentStreamStore(ctrl),
	}
	m.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	svc := NewPlaybackService(m.tx, m.reader, m.writer, m.current, nil)
	svc.now = func() time.Time { return now }
	return svc, m
}

func TestPlaybackService_Advance(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	creatorID := uuid.New()
	playingID := uuid.New()
	next := &models.StreamDB{StreamID: uuid.New(), UserID: creatorID}

	t.Run("first advance selects top entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newPlaybackService(ctrl, now)

		gomock.InOrder(
			m.current.EXPECT().Lock(gomock.Any(), creatorID).Return(nil),
			m.current.EXPECT().Get(gomock.Any(), creatorID).Return(nil, nil),
			m.reader.EXPECT().NextCandidate(gomock.Any(), creatorID).Return(next, nil),
			m.current.EXPECT().Upsert(gomock.Any(), creatorID, next.StreamID).Return(nil),
		)

		got, err := svc.Advance(ctx, creatorID)
		require.NoError(t, err)
		assert.Equal(t, next, got)
	})

	t.Run("current entry is marked played before selecting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newPlaybackService(ctrl, now)

		gomock.InOrder(
			m.current.EXPECT().Lock(gomock.Any(), creatorID).Return(nil),
			m.current.EXPECT().Get(gomock.Any(), creatorID).Return(&models.CurrentStream{UserID: creatorID, StreamID: playingID}, nil),
			m.writer.EXPECT().MarkPlayed(gomock.Any(), creatorID, playingID, now).Return(nil),
			m.reader.EXPECT().NextCandidate(gomock.Any(), creatorID).Return(next, nil),
			m.current.EXPECT().Upsert(gomock.Any(), creatorID, next.StreamID).Return(nil),
		)

		got, err := svc.Advance(ctx, creatorID)
		require.NoError(t, err)
		assert.Equal(t, next.StreamID, got.StreamID)
	})

	t.Run("vanished current entry is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newPlaybackService(ctrl, now)

		m.current.EXPECT().Lock(gomock.Any(), creatorID).Return(nil)
		m.current.EXPECT().Get(gomock.Any(), creatorID).Return(&models.CurrentStream{UserID: creatorID, StreamID: playingID}, nil)
		m.writer.EXPECT().MarkPlayed(gomock.Any(), creatorID, playingID, now).Return(repositories.ErrNotFound)
		m.reader.EXPECT().NextCandidate(gomock.Any(), creatorID).Return(next, nil)
		m.current.EXPECT().Upsert(gomock.Any(), creatorID, next.StreamID).Return(nil)

		_, err := svc.Advance(ctx, creatorID)
		assert.NoError(t, err)
	})

	t.Run("empty queue clears pointer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newPlaybackService(ctrl, now)

		m.current.EXPECT().Lock(gomock.Any(), creatorID).Return(nil)
		m.current.EXPECT().Get(gomock.Any(), creatorID).Return(&models.CurrentStream{UserID: creatorID, StreamID: playingID}, nil)
		m.writer.EXPECT().MarkPlayed(gomock.Any(), creatorID, playingID, now).Return(nil)
		m.reader.EXPECT().NextCandidate(gomock.Any(), creatorID).Return(nil, nil)
		m.current.EXPECT().Delete(gomock.Any(), creatorID).Return(nil)

		got, err := svc.Advance(ctx, creatorID)
		assert.ErrorIs(t, err, ErrQueueEmpty)
		assert.Nil(t, got)
	})

	t.Run("lock failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newPlaybackService(ctrl, now)

		m.current.EXPECT().Lock(gomock.Any(), creatorID).Return(errors.New("lock failed"))

		_, err := svc.Advance(ctx, creatorID)
		assert.EqualError(t, err, "lock failed")
	})

	t.Run("mark played failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newPlaybackService(ctrl, now)

		m.current.EXPECT().Lock(gomock.Any(), creatorID).Return(nil)
		m.current.EXPECT().Get(gomock.Any(), creatorID).Return(&models.CurrentStream{UserID: creatorID, StreamID: playingID}, nil)
		m.writer.EXPECT().MarkPlayed(gomock.Any(), creatorID, playingID, now).Return(errors.New("update failed"))

		_, err := svc.Advance(ctx, creatorID)
		assert.EqualError(t, err, "update failed")
	})
}

func TestPlaybackService_Advance_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creatorID := uuid.New()
	svc, m := newPlaybackService(ctrl, time.Now())
	kafka := NewMockKafkaWriter(ctrl)
	svc.kafkaWriter = kafka

	m.current.EXPECT().Lock(gomock.Any(), creatorID).Return(nil)
	m.current.EXPECT().Get(gomock.Any(), creatorID).Return(nil, nil)
	m.reader.EXPECT().NextCandidate(gomock.Any(), creatorID).Return(nil, nil)
	m.current.EXPECT().Delete(gomock.Any(), creatorID).Return(nil)
	kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Advance(context.Background(), creatorID)
	assert.ErrorIs(t, err, ErrQueueEmpty)
}

func TestPlaybackService_PlayNow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	creatorID := uuid.New()
	streamID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newPlaybackService(ctrl, now)

		gomock.InOrder(
			m.current.EXPECT().Lock(gomock.Any(), creatorID).Return(nil),
			m.reader.EXPECT().GetByOwner(gomock.Any(), creatorID, streamID).Return(&models.StreamDB{StreamID: streamID, UserID: creatorID}, nil),
			m.writer.EXPECT().MarkPlayed(gomock.Any(), creatorID, streamID, now).Return(nil),
			m.current.EXPECT().Upsert(gomock.Any(), creatorID, streamID).Return(nil),
		)

		got, err := svc.PlayNow(ctx, creatorID, streamID)
		require.NoError(t, err)
		assert.True(t, got.Played)
		require.NotNil(t, got.PlayedTs)
		assert.Equal(t, now, *got.PlayedTs)
	})

	t.Run("foreign or unknown entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newPlaybackService(ctrl, now)

		m.current.EXPECT().Lock(gomock.Any(), creatorID).Return(nil)
		m.reader.EXPECT().GetByOwner(gomock.Any(), creatorID, streamID).Return(nil, repositories.ErrNotFound)

		_, err := svc.PlayNow(ctx, creatorID, streamID)
		assert.ErrorIs(t, err, ErrStreamNotFound)
	})

	t.Run("pointer write fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newPlaybackService(ctrl, now)

		m.current.EXPECT().Lock(gomock.Any(), creatorID).Return(nil)
		m.reader.EXPECT().GetByOwner(gomock.Any(), creatorID, streamID).Return(&models.StreamDB{StreamID: streamID}, nil)
		m.writer.EXPECT().MarkPlayed(gomock.Any(), creatorID, streamID, now).Return(nil)
		m.current.EXPECT().Upsert(gomock.Any(), creatorID, streamID).Return(errors.New("upsert failed"))

		_, err := svc.PlayNow(ctx, creatorID, streamID)
		assert.EqualError(t, err, "upsert failed")
	})
}

func TestPlaybackService_ClearCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creatorID := uuid.New()
	svc, m := newPlaybackService(ctrl, time.Now())

	m.current.EXPECT().Delete(gomock.Any(), creatorID).Return(nil)
	assert.NoError(t, svc.ClearCurrent(context.Background(), creatorID))

	m.current.EXPECT().Delete(gomock.Any(), creatorID).Return(errors.New("delete failed"))
	assert.EqualError(t, svc.ClearCurrent(context.Background(), creatorID), "delete failed")
}

func TestPlaybackService_MarkPlayed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()
	streamID := uuid.New()
	svc, m := newPlaybackService(ctrl, now)

	m.writer.EXPECT().MarkPlayed(gomock.Any(), ownerID, streamID, now).Return(nil)
	assert.NoError(t, svc.MarkPlayed(context.Background(), ownerID, streamID))

	m.writer.EXPECT().MarkPlayed(gomock.Any(), ownerID, streamID, now).Return(repositories.ErrNotFound)
	assert.ErrorIs(t, svc.MarkPlayed(context.Background(), ownerID, streamID), ErrStreamNotFound)
}
