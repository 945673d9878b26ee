package httpx

import (
	"context"
	"net/http"

	"bookcatalog/internal/entity"
)

type contextKey string

const (
	identityKey  contextKey = "identity"
	requestIDKey contextKey = "requestID"
)

// IdentityFrom retrieves the resolved identity from the request context,
// or nil when the request carried no resolvable token.
func IdentityFrom(r *http.Request) *entity.User {
	if v, ok := r.Context().Value(identityKey).(entity.User); ok {
		return &v
	}
	return nil
}

// ContextWithIdentity returns a new context carrying the resolved identity.
func ContextWithIdentity(ctx context.Context, u entity.User) context.Context {
	return context.WithValue(ctx, identityKey, u)
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context with the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
