package models

// Queue event types published to Kafka.
const (
	EventStreamAdded       = "stream.added"
	EventStreamRemoved     = "stream.removed"
	EventStreamPlayed      = "stream.played"
	EventUpvoteAdded       = "upvote.added"
	EventUpvoteRemoved     = "upvote.removed"
	EventPlaybackAdvanced  = "playback.advanced"
	EventPlaybackPlayNow   = "playback.play_now"
	EventPlaybackCleared   = "playback.cleared"
	EventPlaybackQueueDone = "playback.queue_empty"
)

// QueueEvent describes a change to a creator's queue.
type QueueEvent struct {
	EventID   string `json:"event_id"`            // EventID is a unique identifier for the event.
	Type      string `json:"type"`                // Type is one of the Event* constants.
	CreatorID string `json:"creator_id"`          // CreatorID owns the affected queue.
	StreamID  string `json:"stream_id,omitempty"` // StreamID is the affected entry, if any.
	UserID    string `json:"user_id"`             // UserID is the user who caused the change.
	Timestamp int64  `json:"timestamp"`           // Timestamp is the Unix timestamp (in seconds) of the change.
}
