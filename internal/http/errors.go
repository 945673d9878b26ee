package http

import (
	"errors"
	"log"
	"net/http"

	"bookcatalog/internal/auth"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/httpx"
)

// writeError maps domain errors to boundary status codes. Anything outside
// the taxonomy (storage I/O failures included) becomes a 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *catalog.ValidationError
	switch {
	case errors.As(err, &vErr):
		details := make([]httpx.ErrorDetail, 0, len(vErr.Fields))
		for _, f := range vErr.Fields {
			details = append(details, httpx.ErrorDetail{Field: f.Field, Message: f.Message})
		}
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book input", details)
	case errors.Is(err, catalog.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	case errors.Is(err, auth.ErrInvalidCredentials):
		httpx.JSONError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password", nil)
	case errors.Is(err, auth.ErrUnauthenticated):
		httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required", nil)
	case errors.Is(err, auth.ErrForbidden):
		httpx.JSONError(w, http.StatusForbidden, "FORBIDDEN", "Administrator access required", nil)
	default:
		log.Printf("request failed: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Server error", nil)
	}
}
