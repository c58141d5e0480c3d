package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/brayton/pkg/log"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-Id"

// loggingResponseWriter captures the status code for the access log.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// withAccessLog tags every response with a request ID and logs one line per
// request once the handler returns.
func withAccessLog(logger log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)

		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lrw, r)

		fields := []log.Field{
			log.String("request_id", id),
			log.String("method", r.Method),
			log.String("path", r.URL.Path),
			log.Int("status", lrw.statusCode),
			log.Duration("duration", time.Since(start)),
		}
		switch {
		case lrw.statusCode >= 500:
			logger.Error("request", fields...)
		case lrw.statusCode >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	})
}
