package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/services/identity/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *MockIdentityServiceInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockIdentityServiceInterface(ctrl)
	handler := NewIdentityHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/signup", handler.SignUpHandler)
	router.POST("/signin", handler.SignInHandler)
	return router, mockService
}

func performJSON(t *testing.T, router *gin.Engine, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp, w
}

// Test SignUpHandler
func TestSignUpHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockIdentityServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			requestBody: helpers.SignUpRequest{Username: "alice", Email: "alice@example.com", Password: "hunter2"},
			mockSetup: func(m *MockIdentityServiceInterface) {
				m.EXPECT().SignUp("alice", "alice@example.com", "hunter2").
					Return(model.User{UserID: "user1", Username: "alice", Email: "alice@example.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "User created successfully",
		},
		{
			name:        "duplicate_email",
			requestBody: helpers.SignUpRequest{Username: "alice", Email: "alice@example.com", Password: "hunter2"},
			mockSetup: func(m *MockIdentityServiceInterface) {
				m.EXPECT().SignUp("alice", "alice@example.com", "hunter2").
					Return(model.User{}, auctionerrors.ErrUserExists)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "User already exists",
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func(m *MockIdentityServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_password",
			requestBody:    map[string]any{"username": "alice", "email": "alice@example.com"},
			mockSetup:      func(m *MockIdentityServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "malformed_email",
			requestBody:    map[string]any{"username": "alice", "email": "not-an-email", "password": "hunter2"},
			mockSetup:      func(m *MockIdentityServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "store_failure",
			requestBody: helpers.SignUpRequest{Username: "alice", Email: "alice@example.com", Password: "hunter2"},
			mockSetup: func(m *MockIdentityServiceInterface) {
				m.EXPECT().SignUp("alice", "alice@example.com", "hunter2").
					Return(model.User{}, errors.New("store unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			router, mockService := newTestRouter(t)
			tc.mockSetup(mockService)

			resp, w := performJSON(t, router, "/signup", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)

			// The signup response never echoes user details back.
			if w.Code == http.StatusCreated {
				require.Nil(t, resp["data"])
			}
		})
	}
}

// Test SignInHandler
func TestSignInHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockIdentityServiceInterface)
		expectedStatus int
		expectedMsg    string
		expectedToken  string
	}{
		{
			name:        "success_returns_token",
			requestBody: helpers.SignInRequest{Email: "alice@example.com", Password: "hunter2"},
			mockSetup: func(m *MockIdentityServiceInterface) {
				m.EXPECT().SignIn("alice@example.com", "hunter2").Return("signed.jwt.token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Signin successful",
			expectedToken:  "signed.jwt.token",
		},
		{
			name:        "wrong_password",
			requestBody: helpers.SignInRequest{Email: "alice@example.com", Password: "wrong"},
			mockSetup: func(m *MockIdentityServiceInterface) {
				m.EXPECT().SignIn("alice@example.com", "wrong").
					Return("", auctionerrors.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid credentials",
		},
		{
			name:        "unknown_email",
			requestBody: helpers.SignInRequest{Email: "nobody@example.com", Password: "hunter2"},
			mockSetup: func(m *MockIdentityServiceInterface) {
				m.EXPECT().SignIn("nobody@example.com", "hunter2").
					Return("", auctionerrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "User not found",
		},
		{
			name:           "missing_fields",
			requestBody:    map[string]any{"email": "alice@example.com"},
			mockSetup:      func(m *MockIdentityServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "token_issue_failure",
			requestBody: helpers.SignInRequest{Email: "alice@example.com", Password: "hunter2"},
			mockSetup: func(m *MockIdentityServiceInterface) {
				m.EXPECT().SignIn("alice@example.com", "hunter2").
					Return("", errors.New("signing failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			router, mockService := newTestRouter(t)
			tc.mockSetup(mockService)

			resp, w := performJSON(t, router, "/signin", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.expectedToken != "" {
				data := resp["data"].(map[string]any)
				require.Equal(t, tc.expectedToken, data["token"])
			}
		})
	}
}
