package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestID returns the id assigned to the request carrying ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// logRequests tags every request with an id and logs its outcome.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		w.Header().Set(RequestIDHeader, id)
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))

		s.monitor.IncrRequests()
		if recorder.status >= http.StatusInternalServerError {
			s.monitor.IncrServerErrors()
		}
		s.log.Info("HTTP request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"latency", time.Since(start),
		)
	})
}

// recoverPanics turns a panic into a 500, as JSON under /api/ and as the error page elsewhere.
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			s.log.Error("Handler panicked", "request_id", RequestID(r.Context()),
				"path", r.URL.Path, "panic", rec)
			if strings.HasPrefix(r.URL.Path, "/api/") {
				s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: internalErrorMessage})
				return
			}
			s.renderPage(w, http.StatusInternalServerError, PageServerError, s.pages.Data("Server error"))
		}()
		next.ServeHTTP(w, r)
	})
}
