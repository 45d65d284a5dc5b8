package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
	"github.com/sbilibin2017/gw-stream-queue/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashOf(t *testing.T, password string) *string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(h)
	return &s
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	email := "alice@example.com"

	tests := []struct {
		name      string
		email     string
		password  string
		setup     func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator)
		wantToken string
		wantErr   error
	}{
		{
			name:     "invalid email",
			email:    "not-an-email",
			password: "password123",
			setup:    func(*services.MockUserReader, *services.MockUserWriter, *services.MockJWTGenerator) {},
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:     "short password",
			email:    email,
			password: "short",
			setup:    func(*services.MockUserReader, *services.MockUserWriter, *services.MockJWTGenerator) {},
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:     "first sign-in registers",
			email:    email,
			password: "password123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), email).Return(nil, nil)
				w.EXPECT().Create(gomock.Any(), email, nil, gomock.Any(), models.ProviderCredentials).
					DoAndReturn(func(_ context.Context, _ string, _ *string, hash *string, _ string) (*models.UserDB, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*hash), []byte("password123")))
						return &models.UserDB{UserID: userID, Email: email, PasswordHash: hash}, nil
					})
				j.EXPECT().Generate(gomock.Any(), userID).Return("token-new", nil)
			},
			wantToken: "token-new",
		},
		{
			name:     "existing user with correct password",
			email:    email,
			password: "password123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), email).Return(&models.UserDB{UserID: userID, PasswordHash: hashOf(t, "password123")}, nil)
				j.EXPECT().Generate(gomock.Any(), userID).Return("token-ok", nil)
			},
			wantToken: "token-ok",
		},
		{
			name:     "existing user with wrong password",
			email:    email,
			password: "wrongpassword",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), email).Return(&models.UserDB{UserID: userID, PasswordHash: hashOf(t, "password123")}, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "provider account sets a password",
			email:    email,
			password: "password123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), email).Return(&models.UserDB{UserID: userID, Provider: models.ProviderGoogle}, nil)
				w.EXPECT().SetPasswordHash(gomock.Any(), userID, gomock.Any()).Return(nil)
				j.EXPECT().Generate(gomock.Any(), userID).Return("token-set", nil)
			},
			wantToken: "token-set",
		},
		{
			name:     "reader error",
			email:    email,
			password: "password123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), email).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "jwt error",
			email:    email,
			password: "password123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), email).Return(&models.UserDB{UserID: userID, PasswordHash: hashOf(t, "password123")}, nil)
				j.EXPECT().Generate(gomock.Any(), userID).Return("", errors.New("jwt error"))
			},
			wantErr: errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := services.NewMockUserReader(ctrl)
			writer := services.NewMockUserWriter(ctrl)
			jwt := services.NewMockJWTGenerator(ctrl)
			tt.setup(reader, writer, jwt)

			svc := services.NewAuthService(reader, writer, jwt, nil)
			token, err := svc.Login(ctx, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_LoginWithGoogle(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	email := "bob@example.com"

	t.Run("provider disabled", func(t *testing.T) {
		svc := services.NewAuthService(nil, nil, nil, nil)
		_, err := svc.LoginWithGoogle(ctx, "code")
		assert.ErrorIs(t, err, services.ErrProviderDisabled)
	})

	tests := []struct {
		name      string
		code      string
		setup     func(g *services.MockIdentityExchanger, r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator)
		wantToken string
		wantErr   error
	}{
		{
			name: "missing code",
			setup: func(*services.MockIdentityExchanger, *services.MockUserReader, *services.MockUserWriter, *services.MockJWTGenerator) {
			},
			wantErr: services.ErrInvalidInput,
		},
		{
			name: "exchange fails",
			code: "bad",
			setup: func(g *services.MockIdentityExchanger, r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				g.EXPECT().Exchange(gomock.Any(), "bad").Return(nil, errors.New("invalid_grant"))
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name: "unverified email",
			code: "code",
			setup: func(g *services.MockIdentityExchanger, r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				g.EXPECT().Exchange(gomock.Any(), "code").Return(&models.ExternalIdentity{Email: email}, nil)
			},
			wantErr: services.ErrEmailNotVerified,
		},
		{
			name: "new google user",
			code: "code",
			setup: func(g *services.MockIdentityExchanger, r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				g.EXPECT().Exchange(gomock.Any(), "code").Return(&models.ExternalIdentity{Email: email, Name: "Bob", EmailVerified: true}, nil)
				r.EXPECT().GetByEmail(gomock.Any(), email).Return(nil, nil)
				w.EXPECT().Create(gomock.Any(), email, gomock.Any(), nil, models.ProviderGoogle).
					DoAndReturn(func(_ context.Context, _ string, name *string, _ *string, _ string) (*models.UserDB, error) {
						require.NotNil(t, name)
						assert.Equal(t, "Bob", *name)
						return &models.UserDB{UserID: userID, Email: email}, nil
					})
				j.EXPECT().Generate(gomock.Any(), userID).Return("google-token", nil)
			},
			wantToken: "google-token",
		},
		{
			name: "existing user",
			code: "code",
			setup: func(g *services.MockIdentityExchanger, r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				g.EXPECT().Exchange(gomock.Any(), "code").Return(&models.ExternalIdentity{Email: email, EmailVerified: true}, nil)
				r.EXPECT().GetByEmail(gomock.Any(), email).Return(&models.UserDB{UserID: userID, Email: email}, nil)
				j.EXPECT().Generate(gomock.Any(), userID).Return("google-token", nil)
			},
			wantToken: "google-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			google := services.NewMockIdentityExchanger(ctrl)
			reader := services.NewMockUserReader(ctrl)
			writer := services.NewMockUserWriter(ctrl)
			jwt := services.NewMockJWTGenerator(ctrl)
			tt.setup(google, reader, writer, jwt)

			svc := services.NewAuthService(reader, writer, jwt, google)
			token, err := svc.LoginWithGoogle(ctx, tt.code)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
