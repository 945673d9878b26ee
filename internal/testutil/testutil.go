package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"bookcatalog/internal/entity"

	"golang.org/x/crypto/bcrypt"
)

// Fixed-token identity fixtures. Hashes are computed once at init with the
// minimum bcrypt cost to keep test runs fast.
var (
	AdminPassword  = "admin-pass"
	ReaderPassword = "reader-pass"

	TestAdmin = entity.User{
		Username: "admin",
		IsAdmin:  true,
		Token:    "admin-token-123",
	}

	TestReader = entity.User{
		Username: "reader",
		IsAdmin:  false,
		Token:    "reader-token-456",
	}
)

func init() {
	adminHash, _ := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.MinCost)
	readerHash, _ := bcrypt.GenerateFromPassword([]byte(ReaderPassword), bcrypt.MinCost)
	TestAdmin.PasswordHash = string(adminHash)
	TestReader.PasswordHash = string(readerHash)
}

// TestBook is a mock book for testing
var TestBook = entity.Book{
	ID:          "test-book-id-789",
	Title:       "Test Book Title",
	Author:      "Test Author",
	Price:       42,
	Cover:       "cover.jpg",
	Tags:        []string{"science"},
	Description: "A test book description",
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithAuth creates a new HTTP request carrying a bearer token
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
