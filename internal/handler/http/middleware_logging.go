package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request through the request
// logger set up by withTraceID. The level follows the status class. Panics
// are not recovered here.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			// nothing written: net/http sends 200
			status = http.StatusOK
		}

		log := logger.FromRequest(r)
		log.WithLevel(accessLogLevel(status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote", r.RemoteAddr).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
