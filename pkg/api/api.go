package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ksysoev/waterlily/pkg/auth"
	"github.com/ksysoev/waterlily/pkg/store"
)

const (
	defaultListen          = ":3000"
	defaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second
)

// Store is the persistence the backend needs.
type Store interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*store.User, error)
	GetUserByName(ctx context.Context, username string) (*store.User, error)
	ListQuestions(ctx context.Context) ([]store.Question, error)
	SaveAnswers(ctx context.Context, userID int64, answers []store.Answer) ([]store.Response, error)
	ListUserAnswers(ctx context.Context, userID int64) ([]store.UserAnswer, error)
}

// Authenticator issues and verifies bearer tokens and hashes passwords.
type Authenticator interface {
	Sign(id int64, username string) (string, error)
	Parse(token string) (*auth.Claims, error)
	HashPassword(password string) (string, error)
	CheckPassword(hash, password string) bool
}

type Config struct {
	Listen          string        `mapstructure:"listen"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Server serves the survey REST API.
type Server struct {
	store   Store
	auth    Authenticator
	handler http.Handler
	listen  string
	timeout time.Duration
}

// New creates the API server with its routes and middleware chain.
func New(cfg Config, st Store, au Authenticator) (*Server, error) {
	if st == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}

	if au == nil {
		return nil, fmt.Errorf("authenticator cannot be nil")
	}

	s := &Server{
		store:   st,
		auth:    au,
		listen:  cfg.Listen,
		timeout: cfg.ShutdownTimeout,
	}

	if s.listen == "" {
		s.listen = defaultListen
	}

	if s.timeout <= 0 {
		s.timeout = defaultShutdownTimeout
	}

	s.handler = s.setupHandler()

	return s, nil
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) setupHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /test", s.handleTest)
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.Handle("GET /auth/verify", s.requireAuth(s.handleVerify))
	mux.HandleFunc("GET /questions", s.handleQuestions)
	mux.Handle("POST /user-answers", s.requireAuth(s.handleSubmitAnswers))
	mux.Handle("GET /user-answers/{userId}", s.requireAuth(s.handleUserAnswers))

	return Use(
		mux,
		WithRecovery(),
		WithAccessLog(),
		WithRequestID(),
	)
}

// Run serves requests until ctx is cancelled and then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.listen, err)
	}

	return s.serve(ctx, lis)
}

func (s *Server) serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)

	go func() {
		slog.InfoContext(ctx, "Starting API server", slog.String("addr", lis.Addr().String()))

		errCh <- srv.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Starting graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Graceful shutdown timed out", slog.Any("error", err))
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	slog.Info("Graceful shutdown completed")

	return nil
}
