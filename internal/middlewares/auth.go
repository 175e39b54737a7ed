package middlewares

import (
	"context"
	"net/http"

	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetExternalID(ctx context.Context, tokenString string) (string, error)
}

// AuthMiddleware returns a middleware that validates JWT using a Tokener and
// stores the authenticated external ID in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			externalID, err := tokener.GetExternalID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetExternalIDToContext(ctx, externalID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var externalIDKey = contextKey{}

// SetExternalIDToContext stores the authenticated external ID in the context
func SetExternalIDToContext(ctx context.Context, externalID string) context.Context {
	return context.WithValue(ctx, externalIDKey, externalID)
}

// GetExternalIDFromContext retrieves the authenticated external ID from the
// context. Returns an empty string if not present.
func GetExternalIDFromContext(ctx context.Context) string {
	externalID, _ := ctx.Value(externalIDKey).(string)
	return externalID
}
