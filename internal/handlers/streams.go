package handlers

//go:generate mockgen -source=streams.go -destination=streams_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
)

// QueueLister defines the queue view the list handler needs.
type QueueLister interface {
	List(ctx context.Context, creatorID, viewerID uuid.UUID) (*models.QueueState, error)
}

// MyStreamsLister lists the caller's own entries.
type MyStreamsLister interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]models.RankedStream, error)
}

// StreamSubmitter adds entries to a queue.
type StreamSubmitter interface {
	Submit(ctx context.Context, creatorID, submitterID uuid.UUID, link string) (*models.RankedStream, error)
}

// StreamRemover deletes one of the caller's entries.
type StreamRemover interface {
	Remove(ctx context.Context, ownerID, streamID uuid.UUID) error
}

// MyStreamsResponse lists the caller's entries
// swagger:model MyStreamsResponse
type MyStreamsResponse struct {
	// Entries, played ones included
	Streams []models.RankedStream `json:"streams"`
}

// SubmitStreamRequest represents the JSON body for adding an entry
// swagger:model SubmitStreamRequest
type SubmitStreamRequest struct {
	// Owner of the target queue
	// required: true
	CreatorID uuid.UUID `json:"creatorId"`

	// YouTube watch, embed or short link
	// required: true
	// default: https://www.youtube.com/watch?v=dQw4w9WgXcQ
	URL string `json:"url"`
}

// NewListStreamsHandler returns the ranked queue of a creator.
// @Summary List queue
// @Description Unplayed entries of the creator ranked by upvotes, the entry playing now and whether the caller owns the queue
// @Tags streams
// @Produce json
// @Param creatorId query string true "Creator id"
// @Success 200 {object} models.QueueState
// @Failure 400 {object} handlers.ErrorResponse "Invalid creator id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Creator not found"
// @Router /streams [get]
// @Security BearerAuth
func NewListStreamsHandler(svc QueueLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		creatorID, err := uuid.Parse(r.URL.Query().Get("creatorId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid creator id")
			return
		}

		state, err := svc.List(r.Context(), creatorID, viewerID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if state.Streams == nil {
			state.Streams = []models.RankedStream{}
		}

		writeJSON(w, http.StatusOK, state)
	}
}

// NewMyStreamsHandler returns every entry of the caller's own queue.
// @Summary My entries
// @Tags streams
// @Produce json
// @Success 200 {object} handlers.MyStreamsResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /streams/my [get]
// @Security BearerAuth
func NewMyStreamsHandler(svc MyStreamsLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		streams, err := svc.ListMine(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if streams == nil {
			streams = []models.RankedStream{}
		}

		writeJSON(w, http.StatusOK, MyStreamsResponse{Streams: streams})
	}
}

// NewSubmitStreamHandler adds a YouTube link to a creator's queue.
// @Summary Submit entry
// @Description Validate the link, look up its title and thumbnail and append it to the queue. Non-creators cannot repeat a video within 10 minutes or add to a queue holding more than 20 entries.
// @Tags streams
// @Accept json
// @Produce json
// @Param request body handlers.SubmitStreamRequest true "Submit Request"
// @Success 200 {object} models.RankedStream
// @Failure 400 {object} handlers.ErrorResponse "Invalid link"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Creator not found"
// @Failure 429 {object} handlers.ErrorResponse "Duplicate or queue full"
// @Failure 502 {object} handlers.ErrorResponse "Video details unavailable"
// @Router /streams [post]
// @Security BearerAuth
func NewSubmitStreamHandler(svc StreamSubmitter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submitterID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		var req SubmitStreamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CreatorID == uuid.Nil {
			logger.Log.Warnw("failed to decode submit request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		stream, err := svc.Submit(r.Context(), req.CreatorID, submitterID, req.URL)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stream)
	}
}

// NewRemoveStreamHandler deletes one of the caller's entries.
// @Summary Remove entry
// @Tags streams
// @Produce json
// @Param streamId query string true "Entry id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid stream id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Stream not found"
// @Router /streams/remove [delete]
// @Security BearerAuth
func NewRemoveStreamHandler(svc StreamRemover, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		streamID, err := uuid.Parse(r.URL.Query().Get("streamId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid stream id")
			return
		}

		if err := svc.Remove(r.Context(), ownerID, streamID); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Stream removed successfully"})
	}
}
