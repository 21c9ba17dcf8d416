package middleware

import (
	"net/http"
	"time"

	"vetclinic/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog registra una línea por request con status y duración.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		fields := map[string]any{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      status,
			"bytes":       ww.BytesWritten(),
			"duration_ms": time.Since(start).Milliseconds(),
			"remote_addr": r.RemoteAddr,
		}

		log := logger.FromContext(r.Context())
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("http request", fields)
		case status >= http.StatusBadRequest:
			log.Warn("http request", fields)
		default:
			log.Info("http request", fields)
		}
	})
}
