package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookcatalog/internal/auth"
	"bookcatalog/internal/entity"
	"bookcatalog/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func testDirectory() *auth.Directory {
	return auth.NewDirectory([]entity.User{testutil.TestAdmin, testutil.TestReader})
}

func TestAuthHandler_Login(t *testing.T) {
	handler := NewAuthHandler(testDirectory())

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedToken  string
	}{
		{
			name:           "admin login returns fixed token",
			body:           map[string]string{"username": "admin", "password": testutil.AdminPassword},
			expectedStatus: http.StatusOK,
			expectedToken:  testutil.TestAdmin.Token,
		},
		{
			name:           "reader login returns fixed token",
			body:           map[string]string{"username": "reader", "password": testutil.ReaderPassword},
			expectedStatus: http.StatusOK,
			expectedToken:  testutil.TestReader.Token,
		},
		{
			name:           "wrong password",
			body:           map[string]string{"username": "admin", "password": "nope"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown username",
			body:           map[string]string{"username": "ghost", "password": "nope"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := testutil.NewRequest(http.MethodPost, "/login", tt.body)

			handler.Login(w, r)

			resp := testutil.RecordHTTPResponse(w)
			assert.Equal(t, tt.expectedStatus, resp.Code)

			if tt.expectedToken != "" {
				data, ok := resp.Body["data"].(map[string]interface{})
				assert.True(t, ok)
				assert.Equal(t, tt.expectedToken, data["token"])
			}
		})
	}
}

func TestAuthHandler_LoginRejectsGet(t *testing.T) {
	handler := NewAuthHandler(testDirectory())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/login", nil)

	handler.Login(w, r)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
