package httpx

import (
	"net/http"
	"strings"

	"github.com/kobiowuquadri/book-traker/internal/auth"
)

// AuthMiddleware validates the bearer session reference and puts the
// user id on the request context. Only introspection endpoints use it;
// shelf operations are scoped by an explicit userId, which is the
// documented (and intentionally weak) trust model.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token", nil)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.Sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
