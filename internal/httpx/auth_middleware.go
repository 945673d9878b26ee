package httpx

import (
	"net/http"
	"strings"

	"bookcatalog/internal/entity"
)

// TokenResolver maps an opaque bearer token to an identity. Decoupled from
// the auth package so the middleware can be tested with a stub.
type TokenResolver interface {
	Resolve(token string) (entity.User, error)
}

// AuthMiddleware resolves the Authorization bearer token and stores the
// identity in the request context. Requests with no resolvable token are
// rejected up front; capability checks stay with the handlers.
func AuthMiddleware(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Missing or malformed bearer token", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			identity, err := resolver.Resolve(token)
			if err != nil {
				JSONError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Unknown token", nil)
				return
			}

			ctx := ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
