package models

import (
	"time"

	"github.com/google/uuid"
)

// StreamTypeYoutube is the only supported stream source.
const StreamTypeYoutube = "Youtube"

// StreamDB is a queue entry owned by a creator.
type StreamDB struct {
	StreamID    uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"userId" db:"user_id"`   // Creator owning the queue
	AddedBy     uuid.UUID  `json:"addedBy" db:"added_by"` // Submitter
	Type        string     `json:"type" db:"type"`
	URL         string     `json:"url" db:"url"`
	ExtractedID string     `json:"extractedId" db:"extracted_id"` // YouTube video id
	Title       string     `json:"title" db:"title"`
	SmallImg    string     `json:"smallImg" db:"small_img"`
	BigImg      string     `json:"bigImg" db:"big_img"`
	Played      bool       `json:"played" db:"played"`
	PlayedTs    *time.Time `json:"playedTs" db:"played_ts"`
	CreatedAt   time.Time  `json:"createAt" db:"created_at"`
}

// RankedStream is a queue entry annotated for a particular viewer.
type RankedStream struct {
	StreamDB
	Upvotes    int  `json:"upvotes" db:"upvotes"`
	HasUpvoted bool `json:"hasUpvoted" db:"has_upvoted"`
}

// CurrentStream is the per-creator pointer to the entry being played.
type CurrentStream struct {
	UserID   uuid.UUID `json:"userId" db:"user_id"`
	StreamID uuid.UUID `json:"streamId" db:"stream_id"`
	Stream   *StreamDB `json:"stream"`
}

// QueueState is the polled view of a creator's queue.
type QueueState struct {
	Streams      []RankedStream `json:"streams"`
	ActiveStream *CurrentStream `json:"activeStream"`
	IsCreator    bool           `json:"isCreator"`
}
