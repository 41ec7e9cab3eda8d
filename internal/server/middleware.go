package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pfrederiksen/worldcup-dashboard/internal/logger"
)

// requestLogger logs each request and records it in the metrics, labelled by
// route pattern rather than raw path to keep label cardinality bounded.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		took := time.Since(start)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		s.metrics.ObserveRequest(route, status, took)
		s.logger.Debug("request served", logger.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"route":       route,
			"status":      status,
			"bytes":       ww.BytesWritten(),
			"duration_ms": took.Milliseconds(),
			"request_id":  requestID(r),
			"remote_addr": r.RemoteAddr,
		})
	})
}

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
