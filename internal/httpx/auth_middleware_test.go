package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookcatalog/internal/entity"

	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	users map[string]entity.User
}

func (s *stubResolver) Resolve(token string) (entity.User, error) {
	u, ok := s.users[token]
	if !ok {
		return entity.User{}, errors.New("unauthenticated")
	}
	return u, nil
}

func TestAuthMiddleware(t *testing.T) {
	resolver := &stubResolver{users: map[string]entity.User{
		"good-token": {Username: "alice", IsAdmin: true, Token: "good-token"},
	}}

	var gotIdentity *entity.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity = IdentityFrom(r)
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(resolver)(next)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectUser     string
	}{
		{"valid token", "Bearer good-token", http.StatusOK, "alice"},
		{"unknown token", "Bearer bad-token", http.StatusUnauthorized, ""},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"malformed header", "Token good-token", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotIdentity = nil

			r := httptest.NewRequest(http.MethodGet, "/books", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectUser != "" {
				assert.NotNil(t, gotIdentity)
				assert.Equal(t, tt.expectUser, gotIdentity.Username)
			} else {
				assert.Nil(t, gotIdentity)
			}
		})
	}
}
