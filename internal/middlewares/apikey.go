package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
)

// APIKeyHeader carries the shared key of the gateway and the chat front end.
const APIKeyHeader = "apikey"

// APIKeyMiddleware rejects requests whose apikey header differs from key.
// An empty key rejects everything.
func APIKeyMiddleware(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(APIKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				logger.Log.Warnw("invalid api key", "uri", r.RequestURI, "remote_addr", r.RemoteAddr)
				writeJSONError(w, http.StatusUnauthorized, "invalid api key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
