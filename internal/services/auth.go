package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLen is the shortest accepted password.
const MinPasswordLen = 8

// ErrEmailNotVerified is returned when the provider has not verified the user's email.
var ErrEmailNotVerified = errors.New("email is not verified by the provider")

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, email string, name, passwordHash *string, provider string) (*models.UserDB, error)
	SetPasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// IdentityExchanger turns an OAuth2 authorization code into a verified identity.
type IdentityExchanger interface {
	Exchange(ctx context.Context, code string) (*models.ExternalIdentity, error)
}

// AuthService handles sign-in.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	google IdentityExchanger
}

// NewAuthService creates a new AuthService instance. google may be nil when
// Google sign-in is not configured.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, google IdentityExchanger) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		google: google,
	}
}

// Login signs a user in with email and password. The first sign-in with an
// unknown email registers it.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil || len(password) < MinPasswordLen {
		return "", ErrInvalidInput
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	switch {
	case user == nil:
		hash, err := hashPassword(password)
		if err != nil {
			return "", err
		}
		user, err = svc.writer.Create(ctx, email, nil, &hash, models.ProviderCredentials)
		if err != nil {
			logger.Log.Errorw("failed to create user", "err", err)
			return "", err
		}
	case user.PasswordHash == nil:
		hash, err := hashPassword(password)
		if err != nil {
			return "", err
		}
		if err := svc.writer.SetPasswordHash(ctx, user.UserID, hash); err != nil {
			logger.Log.Errorw("failed to set password", "userID", user.UserID, "err", err)
			return "", err
		}
	default:
		if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
			logger.Log.Errorw("invalid credentials", "email", email)
			return "", ErrInvalidCredentials
		}
	}

	return svc.issue(ctx, user.UserID)
}

// LoginWithGoogle completes the Google authorization code flow.
func (svc *AuthService) LoginWithGoogle(ctx context.Context, code string) (string, error) {
	if svc.google == nil {
		return "", ErrProviderDisabled
	}
	if code == "" {
		return "", ErrInvalidInput
	}

	identity, err := svc.google.Exchange(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to exchange authorization code", "err", err)
		return "", ErrInvalidCredentials
	}
	if !identity.EmailVerified || identity.Email == "" {
		return "", ErrEmailNotVerified
	}

	user, err := svc.reader.GetByEmail(ctx, identity.Email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		var name *string
		if identity.Name != "" {
			name = &identity.Name
		}
		user, err = svc.writer.Create(ctx, identity.Email, name, nil, models.ProviderGoogle)
		if err != nil {
			logger.Log.Errorw("failed to create user", "err", err)
			return "", err
		}
	}

	return svc.issue(ctx, user.UserID)
}

func (svc *AuthService) issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := svc.jwt.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return token, nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}
	return string(hashed), nil
}
