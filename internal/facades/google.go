package facades

import (
	"context"
	"errors"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
	"golang.org/x/oauth2"
)

// GoogleIssuer is the OpenID Connect issuer for Google accounts.
const GoogleIssuer = "https://accounts.google.com"

// ErrMissingIDToken is returned when the token response carries no ID token.
var ErrMissingIDToken = errors.New("token response has no id_token")

// GoogleFacade runs the OAuth2 authorization code flow against Google and
// verifies the returned ID token.
type GoogleFacade struct {
	config   oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// NewGoogleFacade discovers the issuer's endpoints and keys.
func NewGoogleFacade(ctx context.Context, issuer, clientID, clientSecret, redirectURL string) (*GoogleFacade, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}

	config := oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	return newGoogleFacade(config, provider.Verifier(&oidc.Config{ClientID: clientID})), nil
}

func newGoogleFacade(config oauth2.Config, verifier *oidc.IDTokenVerifier) *GoogleFacade {
	return &GoogleFacade{config: config, verifier: verifier}
}

// AuthCodeURL returns the consent page URL carrying state.
func (f *GoogleFacade) AuthCodeURL(state string) string {
	return f.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for the identity in the verified ID token.
func (f *GoogleFacade) Exchange(ctx context.Context, code string) (*models.ExternalIdentity, error) {
	token, err := f.config.Exchange(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to exchange authorization code", "error", err)
		return nil, err
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, ErrMissingIDToken
	}

	idToken, err := f.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		logger.Log.Errorw("ID token verification failed", "error", err)
		return nil, err
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, err
	}

	return &models.ExternalIdentity{
		Email:         claims.Email,
		Name:          claims.Name,
		EmailVerified: claims.EmailVerified,
	}, nil
}
