package middleware

import (
	"context"
	"errors"
	"net/http"

	"lovesync-backend/internal/kvstore"
	"lovesync-backend/internal/models"
	"lovesync-backend/internal/services"
)

type contextKey string

const sessionContextKey contextKey = "session_context"

// SessionMiddleware resolves the logged-in user and session from the
// stored pointers and injects the SessionContext into the request context.
// Requests with no resolvable login get 401 and the client falls back to
// onboarding.
func SessionMiddleware(pairService *services.PairService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sc, err := pairService.Resolve(r.Context())
			if err != nil {
				status := http.StatusInternalServerError
				if errors.Is(err, kvstore.ErrUnavailable) {
					status = http.StatusServiceUnavailable
				}
				respondError(w, "Failed to resolve session", status)
				return
			}
			if sc == nil {
				respondError(w, "Not logged in", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionContext extracts the resolved SessionContext from the request
// context. It is nil outside SessionMiddleware.
func GetSessionContext(ctx context.Context) *models.SessionContext {
	sc, _ := ctx.Value(sessionContextKey).(*models.SessionContext)
	return sc
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
