package handlers

//go:generate mockgen -source=common.go -destination=common_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/jwt"
	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
	"github.com/sbilibin2017/gw-stream-queue/internal/services"
)

// Tokener defines the token methods the stream handlers need to identify the caller.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse is the body of mutations that return no data
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

// StreamIDRequest names one queue entry
// swagger:model StreamIDRequest
type StreamIDRequest struct {
	// Entry id
	// required: true
	StreamID uuid.UUID `json:"streamId"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// callerID resolves the authenticated user. It answers 401 itself and returns false
// when the request carries no usable token.
func callerID(w http.ResponseWriter, r *http.Request, tokener Tokener) (uuid.UUID, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}

	return claims.UserID, true
}

// decodeStreamID reads a {"streamId": ...} body.
func decodeStreamID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	var req StreamIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StreamID == uuid.Nil {
		logger.Log.Warnw("invalid stream id in request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return uuid.Nil, false
	}
	return req.StreamID, true
}

// writeServiceError maps service errors to status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidLink):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrCreatorNotFound),
		errors.Is(err, services.ErrStreamNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateRecent),
		errors.Is(err, services.ErrQueueFull):
		writeError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, services.ErrMetadataUnavailable):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
