package handlers

//go:generate mockgen -source=votes.go -destination=votes_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// VoteToggler flips the caller's vote on an entry.
type VoteToggler interface {
	Toggle(ctx context.Context, userID, streamID uuid.UUID) (bool, error)
}

// Unvoter removes the caller's vote on an entry.
type Unvoter interface {
	Unvote(ctx context.Context, userID, streamID uuid.UUID) error
}

// UpvoteResponse reports the caller's vote after a toggle
// swagger:model UpvoteResponse
type UpvoteResponse struct {
	// Success message
	// default: Upvoted successfully
	Message string `json:"message"`

	// Whether the caller has a vote on the entry now
	Upvoted bool `json:"upvoted"`
}

// NewUpvoteHandler toggles the caller's upvote.
// @Summary Toggle upvote
// @Tags votes
// @Accept json
// @Produce json
// @Param request body handlers.StreamIDRequest true "Entry"
// @Success 200 {object} handlers.UpvoteResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Stream not found"
// @Router /streams/upvote [post]
// @Security BearerAuth
func NewUpvoteHandler(svc VoteToggler, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}
		streamID, ok := decodeStreamID(w, r)
		if !ok {
			return
		}

		upvoted, err := svc.Toggle(r.Context(), userID, streamID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		msg := "Upvote removed"
		if upvoted {
			msg = "Upvoted successfully"
		}
		writeJSON(w, http.StatusOK, UpvoteResponse{Message: msg, Upvoted: upvoted})
	}
}

// NewDownvoteHandler removes the caller's upvote if there is one.
// @Summary Remove upvote
// @Tags votes
// @Accept json
// @Produce json
// @Param request body handlers.StreamIDRequest true "Entry"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /streams/downvote [post]
// @Security BearerAuth
func NewDownvoteHandler(svc Unvoter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}
		streamID, ok := decodeStreamID(w, r)
		if !ok {
			return
		}

		if err := svc.Unvote(r.Context(), userID, streamID); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Downvoted successfully"})
	}
}
