package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-finance-assistant/internal/jwt"
	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type adminKey struct{}

// AdminFromContext returns the subject of the validated admin token, or "".
func AdminFromContext(ctx context.Context) string {
	admin, _ := ctx.Value(adminKey{}).(string)
	return admin
}

// AuthMiddleware returns a middleware that only lets requests with a valid admin token through
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx = context.WithValue(ctx, adminKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
