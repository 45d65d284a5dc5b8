package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/jwt"
	"github.com/sbilibin2017/gw-stream-queue/internal/services"
	"github.com/stretchr/testify/assert"
)

const validToken = "valid-token"

// expectCaller makes the tokener resolve validToken to userID.
func expectCaller(m *MockTokener, userID uuid.UUID) {
	m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
	m.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
}

func jsonBody(v any) io.Reader {
	if s, ok := v.(string); ok {
		return bytes.NewReader([]byte(s))
	}
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestCallerID(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		setupMocks func(m *MockTokener)
		wantOK     bool
	}{
		{
			name:       "resolved",
			setupMocks: func(m *MockTokener) { expectCaller(m, userID) },
			wantOK:     true,
		},
		{
			name: "missing token",
			setupMocks: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrMissingAuthHeader)
			},
		},
		{
			name: "invalid token",
			setupMocks: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				m.EXPECT().GetClaims(gomock.Any(), validToken).Return(nil, jwt.ErrInvalidToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokener := NewMockTokener(ctrl)
			tt.setupMocks(tokener)

			rr := httptest.NewRecorder()
			got, ok := callerID(rr, httptest.NewRequest(http.MethodGet, "/", nil), tokener)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, userID, got)
				return
			}
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Unauthorized", decodeBody(t, rr)["error"])
		})
	}
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{services.ErrInvalidInput, http.StatusBadRequest},
		{services.ErrInvalidLink, http.StatusBadRequest},
		{services.ErrCreatorNotFound, http.StatusNotFound},
		{services.ErrStreamNotFound, http.StatusNotFound},
		{services.ErrDuplicateRecent, http.StatusTooManyRequests},
		{services.ErrQueueFull, http.StatusTooManyRequests},
		{services.ErrMetadataUnavailable, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeServiceError(rr, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			resp := decodeBody(t, rr)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", resp["error"])
			} else {
				assert.Equal(t, tt.err.Error(), resp["error"])
			}
		})
	}
}
