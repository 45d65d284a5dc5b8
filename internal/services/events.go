package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a queue event to Kafka. Failures are logged and never returned.
func publishEvent(ctx context.Context, w KafkaWriter, eventType string, creatorID, streamID, userID uuid.UUID) {
	event := models.QueueEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID.String(),
		Timestamp: time.Now().Unix(),
	}
	if creatorID != uuid.Nil {
		event.CreatorID = creatorID.String()
	}
	if streamID != uuid.Nil {
		event.StreamID = streamID.String()
	}

	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal queue event", "event_id", event.EventID, "error", err)
		return
	}

	// Events for one queue share a key so they land on one partition in order.
	key := event.CreatorID
	if key == "" {
		key = event.StreamID
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish queue event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Queue event published to Kafka", "event_id", event.EventID, "type", eventType)
	}
}
