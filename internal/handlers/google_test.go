package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-stream-queue/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewMockAuthCodeURLer(ctrl)

	var issued string
	provider.EXPECT().AuthCodeURL(gomock.Any()).DoAndReturn(func(state string) string {
		issued = state
		return "https://accounts.example.com/auth?state=" + state
	})

	rr := httptest.NewRecorder()
	NewGoogleLoginHandler(provider).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/login", nil))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://accounts.example.com/auth?state="+issued, rr.Header().Get("Location"))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, OAuthStateCookie, cookies[0].Name)
	assert.Equal(t, issued, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestGoogleCallbackHandler(t *testing.T) {
	tests := []struct {
		name               string
		cookieState        string
		queryState         string
		setupMocks         func(m *MockGoogleLoginer)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful sign-in",
			cookieState: "s1",
			queryState:  "s1",
			setupMocks: func(m *MockGoogleLoginer) {
				m.EXPECT().LoginWithGoogle(gomock.Any(), "the-code").Return("jwt-token", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "token",
		},
		{
			name:               "missing state cookie",
			queryState:         "s1",
			setupMocks:         func(m *MockGoogleLoginer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "state mismatch",
			cookieState:        "s1",
			queryState:         "s2",
			setupMocks:         func(m *MockGoogleLoginer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "unverified email",
			cookieState: "s1",
			queryState:  "s1",
			setupMocks: func(m *MockGoogleLoginer) {
				m.EXPECT().LoginWithGoogle(gomock.Any(), "the-code").Return("", services.ErrEmailNotVerified)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:        "internal error",
			cookieState: "s1",
			queryState:  "s1",
			setupMocks: func(m *MockGoogleLoginer) {
				m.EXPECT().LoginWithGoogle(gomock.Any(), "the-code").Return("", assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockGoogleLoginer(ctrl)
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?code=the-code&state="+tt.queryState, nil)
			if tt.cookieState != "" {
				req.AddCookie(&http.Cookie{Name: OAuthStateCookie, Value: tt.cookieState})
			}
			rr := httptest.NewRecorder()

			NewGoogleCallbackHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
