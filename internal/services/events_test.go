package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishEvent(t *testing.T) {
	ctx := context.Background()
	creatorID := uuid.New()
	streamID := uuid.New()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)

	var got kafka.Message
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			got = msgs[0]
			return nil
		})

	publishEvent(ctx, writer, models.EventStreamAdded, creatorID, streamID, userID)

	assert.Equal(t, creatorID.String(), string(got.Key))

	var event models.QueueEvent
	require.NoError(t, json.Unmarshal(got.Value, &event))
	assert.Equal(t, models.EventStreamAdded, event.Type)
	assert.Equal(t, creatorID.String(), event.CreatorID)
	assert.Equal(t, streamID.String(), event.StreamID)
	assert.Equal(t, userID.String(), event.UserID)
	assert.NotEmpty(t, event.EventID)
	assert.NotZero(t, event.Timestamp)
}

func TestPublishEvent_KeyFallsBackToStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	streamID := uuid.New()
	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			assert.Equal(t, streamID.String(), string(msgs[0].Key))
			return nil
		})

	publishEvent(context.Background(), writer, models.EventUpvoteAdded, uuid.Nil, streamID, uuid.New())
}

func TestPublishEvent_FailuresAreSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	assert.NotPanics(t, func() {
		publishEvent(context.Background(), writer, models.EventPlaybackCleared, uuid.New(), uuid.Nil, uuid.New())
	})
	assert.NotPanics(t, func() {
		publishEvent(context.Background(), nil, models.EventPlaybackCleared, uuid.New(), uuid.Nil, uuid.New())
	})
}
