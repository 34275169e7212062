package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ksysoev/waterlily/pkg/auth"
)

const requestIDHeader = "X-Request-ID"

// Middleware wraps an http.Handler with additional behaviour.
type Middleware func(next http.Handler) http.Handler

// Use wraps h with the middlewares. The first middleware is the innermost one.
func Use(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}

	return h
}

// WithRequestID attaches a request id to the context and the response headers.
// An incoming X-Request-ID header is reused when present.
func WithRequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.New().String()
			}

			w.Header().Set(requestIDHeader, reqID)

			// nolint:staticcheck // the logger reads the request id by this key
			ctx := context.WithValue(r.Context(), "req_id", reqID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// WithAccessLog logs every request with its status and duration.
func WithAccessLog() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			slog.InfoContext(r.Context(), "Request handled",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// WithRecovery turns a panicking handler into a 500 response.
func WithRecovery() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.ErrorContext(r.Context(), "Handler panicked", slog.Any("panic", rec))
					writeError(w, http.StatusInternalServerError, internalError, "")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// requireAuth rejects requests without a valid bearer token and passes the token claims to next.
func (s *Server) requireAuth(next func(w http.ResponseWriter, r *http.Request, claims *auth.Claims)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Access token required", "")
			return
		}

		claims, err := s.auth.Parse(token)
		if err != nil {
			slog.DebugContext(r.Context(), "Token rejected", slog.Any("error", err))
			writeError(w, http.StatusForbidden, "Invalid or expired token", "")

			return
		}

		next(w, r, claims)
	})
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
