package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/jsphweid/modalchords/logger"
)

const requestIdHeader = "X-Request-ID"

type contextKey string

const requestIdKey contextKey = "request_id"

func requestIdFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// requestTracking tags every request with an id and logs its outcome.
func requestTracking(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := uuid.New().String()
		w.Header().Set(requestIdHeader, requestId)
		r = r.WithContext(context.WithValue(r.Context(), requestIdKey, requestId))

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		fields := logger.Fields{
			"request_id":  requestId,
			"duration_ms": time.Since(start).Milliseconds(),
			"status_code": rec.status,
			"method":      r.Method,
			"path":        r.URL.Path,
		}
		switch {
		case rec.status >= http.StatusInternalServerError:
			logger.Warn("Request failed with server error", fields)
		case rec.status >= http.StatusBadRequest:
			logger.Warn("Request failed with client error", fields)
		default:
			logger.Info("Request completed", fields)
		}
	})
}

// recoverWithSentry turns a panic into a 500 and reports it.
func recoverWithSentry(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if hub := sentry.CurrentHub(); hub.Client() != nil {
					hub.RecoverWithContext(r.Context(), err)
				}
				writeError(w, r, http.StatusInternalServerError, fmt.Errorf("panic: %v", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
