package handlers

//go:generate mockgen -source=playback.go -destination=playback_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
	"github.com/sbilibin2017/gw-stream-queue/internal/services"
)

// Advancer moves the caller's queue to its next entry.
type Advancer interface {
	Advance(ctx context.Context, creatorID uuid.UUID) (*models.StreamDB, error)
}

// NowPlayer jumps the caller's queue to a chosen entry.
type NowPlayer interface {
	PlayNow(ctx context.Context, creatorID, streamID uuid.UUID) (*models.StreamDB, error)
}

// CurrentClearer stops playback of the caller's queue.
type CurrentClearer interface {
	ClearCurrent(ctx context.Context, creatorID uuid.UUID) error
}

// PlayedMarker flags one of the caller's entries as played.
type PlayedMarker interface {
	MarkPlayed(ctx context.Context, ownerID, streamID uuid.UUID) error
}

// PlaybackResponse carries the entry now playing
// swagger:model PlaybackResponse
type PlaybackResponse struct {
	// Success message
	Message string `json:"message"`

	// Entry now playing, null when the queue ran out
	Stream *models.StreamDB `json:"stream"`
}

// NewNextStreamHandler advances the caller's queue.
// @Summary Play next
// @Description Mark the current entry played and start the highest ranked unplayed one. Returns a null stream when nothing is left.
// @Tags playback
// @Produce json
// @Success 200 {object} handlers.PlaybackResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /streams/next [post]
// @Security BearerAuth
func NewNextStreamHandler(svc Advancer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creatorID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		stream, err := svc.Advance(r.Context(), creatorID)
		if errors.Is(err, services.ErrQueueEmpty) {
			writeJSON(w, http.StatusOK, PlaybackResponse{Message: "No more streams in queue"})
			return
		}
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PlaybackResponse{Message: "Playing next stream", Stream: stream})
	}
}

// NewPlayNowHandler starts one of the caller's entries immediately.
// @Summary Play now
// @Tags playback
// @Accept json
// @Produce json
// @Param request body handlers.StreamIDRequest true "Entry"
// @Success 200 {object} handlers.PlaybackResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Stream not found"
// @Router /streams/play-now [post]
// @Security BearerAuth
func NewPlayNowHandler(svc NowPlayer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creatorID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}
		streamID, ok := decodeStreamID(w, r)
		if !ok {
			return
		}

		stream, err := svc.PlayNow(r.Context(), creatorID, streamID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PlaybackResponse{Message: "Now playing", Stream: stream})
	}
}

// NewRemoveCurrentHandler stops playback without marking anything played.
// @Summary Clear current
// @Tags playback
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /streams/remove-current [post]
// @Security BearerAuth
func NewRemoveCurrentHandler(svc CurrentClearer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creatorID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		if err := svc.ClearCurrent(r.Context(), creatorID); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Current stream cleared"})
	}
}

// NewMarkPlayedHandler flags one of the caller's entries as played.
// @Summary Mark played
// @Tags playback
// @Accept json
// @Produce json
// @Param request body handlers.StreamIDRequest true "Entry"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Stream not found"
// @Router /streams/mark-played [post]
// @Security BearerAuth
func NewMarkPlayedHandler(svc PlayedMarker, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}
		streamID, ok := decodeStreamID(w, r)
		if !ok {
			return
		}

		if err := svc.MarkPlayed(r.Context(), ownerID, streamID); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Stream marked as played"})
	}
}
