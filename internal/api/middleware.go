package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"neighbornet/internal/auth"
	"neighbornet/internal/core"
	"neighbornet/internal/metrics"
)

type contextKey string

const (
	loggerContextKey = contextKey("logger")

	requestIDHeader = "X-Request-ID"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		logger := s.Logger.With("method", r.Method, "path", r.URL.Path, "request_id", requestID)
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}

		next.ServeHTTP(sw, r)

		duration := time.Since(start)
		status := sw.status
		if status == 0 {
			status = http.StatusOK
		}

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		metrics.ObserveRequest(r.Method, route, status, duration)

		logger(r.Context()).Info("request", "duration", duration, "status", status)
	})
}

// Recovering panics and logging
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger(r.Context()).Error("panic recovered", "error", err)
				writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// authenticate resolves the bearer token to an existing user and stores it as the viewer.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			writeError(w, r, fmt.Errorf("%w: no token provided", core.ErrUnauthenticated))
			return
		}

		userID, err := s.Tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			writeError(w, r, err)
			return
		}

		exists, err := s.Users.Exists(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if !exists {
			writeError(w, r, fmt.Errorf("%w: user not found", core.ErrUnauthenticated))
			return
		}

		ctx := auth.WithViewer(r.Context(), userID)
		ctx = context.WithValue(ctx, loggerContextKey, logger(ctx).With("user_id", userID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
