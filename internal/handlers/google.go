package handlers

//go:generate mockgen -source=google.go -destination=google_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
	"github.com/sbilibin2017/gw-stream-queue/internal/services"
)

// OAuthStateCookie holds the state issued by the login redirect until the callback.
const OAuthStateCookie = "oauth_state"

// AuthCodeURLer builds the provider consent URL.
type AuthCodeURLer interface {
	AuthCodeURL(state string) string
}

// GoogleLoginer completes Google sign-in.
type GoogleLoginer interface {
	LoginWithGoogle(ctx context.Context, code string) (string, error)
}

// NewGoogleLoginHandler redirects to the Google consent page.
// @Summary Google sign-in
// @Description Redirect to Google. The callback returns a JWT token.
// @Tags auth
// @Success 302 "Redirect to Google"
// @Router /auth/google/login [get]
func NewGoogleLoginHandler(provider AuthCodeURLer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := uuid.NewString()

		http.SetCookie(w, &http.Cookie{
			Name:     OAuthStateCookie,
			Value:    state,
			Path:     "/",
			Expires:  time.Now().Add(10 * time.Minute),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, provider.AuthCodeURL(state), http.StatusFound)
	}
}

// NewGoogleCallbackHandler finishes the Google authorization code flow.
// @Summary Google sign-in callback
// @Description Exchange the authorization code and return a JWT token
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "State issued by the login redirect"
// @Success 200 {object} handlers.TokenResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "State mismatch or missing code"
// @Failure 401 {object} handlers.ErrorResponse "Google sign-in failed"
// @Router /auth/google/callback [get]
func NewGoogleCallbackHandler(svc GoogleLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(OAuthStateCookie)
		if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
			logger.Log.Warnw("oauth state mismatch", "error", err)
			writeError(w, http.StatusBadRequest, "State mismatch")
			return
		}

		http.SetCookie(w, &http.Cookie{Name: OAuthStateCookie, Value: "", Path: "/", MaxAge: -1})

		token, err := svc.LoginWithGoogle(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Missing authorization code")
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrEmailNotVerified):
				writeError(w, http.StatusUnauthorized, "Google sign-in failed")
			case errors.Is(err, services.ErrProviderDisabled):
				writeError(w, http.StatusNotFound, "Google sign-in is not configured")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{Token: token})
	}
}
