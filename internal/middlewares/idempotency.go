package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
)

//go:generate mockgen -source=idempotency.go -destination=idempotency_mock.go -package=middlewares

// IdempotencyHeader is the standard HTTP header for idempotency keys
const IdempotencyHeader = "Idempotency-Key"

// IdempotencyStore keeps locks and replayable responses.
type IdempotencyStore interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
	GetResponse(ctx context.Context, key string) (*models.CachedResponse, error)
	SaveResponse(ctx context.Context, key string, resp *models.CachedResponse) error
}

// IdempotencyMiddleware replays the stored response for a repeated Idempotency-Key
// and answers 409 while the first request with that key is still running.
// Only 2xx responses are stored. Requests without the header pass through.
func IdempotencyMiddleware(store IdempotencyStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idemKey := r.Header.Get(IdempotencyHeader)
			if idemKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := "idempotency:" + r.Method + ":" + r.URL.Path + ":" + idemKey

			cached, err := store.GetResponse(ctx, key)
			if err != nil {
				logger.Log.Errorw("failed to read idempotent response", "key", key, "error", err)
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if cached != nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Idempotency-Hit", "true")
				w.WriteHeader(cached.Status)
				w.Write(cached.Body)
				return
			}

			acquired, err := store.Acquire(ctx, key)
			if err != nil {
				logger.Log.Errorw("failed to acquire idempotency lock", "key", key, "error", err)
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if !acquired {
				writeJSONError(w, http.StatusConflict, "a request with this idempotency key is being processed")
				return
			}
			defer func() {
				if err := store.Release(context.WithoutCancel(ctx), key); err != nil {
					logger.Log.Errorw("failed to release idempotency lock", "key", key, "error", err)
				}
			}()

			rec := &recordingWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.statusCode >= 200 && rec.statusCode < 300 {
				resp := &models.CachedResponse{Status: rec.statusCode, Body: rec.body.Bytes()}
				if err := store.SaveResponse(context.WithoutCancel(ctx), key, resp); err != nil {
					logger.Log.Errorw("failed to store idempotent response", "key", key, "error", err)
				}
			}
		})
	}
}

// recordingWriter passes the response through while keeping a copy.
type recordingWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rw *recordingWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recordingWriter) Write(b []byte) (int, error) {
	rw.body.Write(b)
	return rw.ResponseWriter.Write(b)
}
