package handlers

//go:generate mockgen -source=signin.go -destination=signin_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
	"github.com/sbilibin2017/gw-stream-queue/internal/services"
)

// SignIner defines the interface that the sign-in service must implement.
type SignIner interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// SignInRequest represents the JSON body for credentials sign-in
// swagger:model SignInRequest
type SignInRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password, at least 8 characters
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// TokenResponse represents a successful sign-in response
// swagger:model TokenResponse
type TokenResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewSignInHandler returns an HTTP handler for credentials sign-in.
// @Summary Sign in
// @Description Authenticate with email and password and return a JWT token. An unknown email is registered on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.SignInRequest true "Sign-in Request"
// @Success 200 {object} handlers.TokenResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid email or password format"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /auth/signin [post]
func NewSignInHandler(svc SignIner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Invalid email or password format")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{Token: token})
	}
}
