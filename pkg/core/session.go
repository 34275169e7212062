package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// Login authenticates against the backend and stores the resulting session.
func (s *Service) Login(ctx context.Context, username, password string) (*AuthSession, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, ErrEmptyCredentials
	}

	sess, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	if err := s.repo.SaveSession(ctx, s.profile, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	slog.InfoContext(ctx, "User logged in", slog.Int64("user_id", sess.UserID))

	return sess, nil
}

// Register creates a new account on the backend and stores the resulting session.
func (s *Service) Register(ctx context.Context, username, password string) (*AuthSession, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, ErrEmptyCredentials
	}

	sess, err := s.api.Register(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	if err := s.repo.SaveSession(ctx, s.profile, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	slog.InfoContext(ctx, "User registered", slog.Int64("user_id", sess.UserID))

	return sess, nil
}

// Logout tears down the stored session.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.repo.DeleteSession(ctx, s.profile); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// CurrentUser verifies the stored token with the backend. A rejected token removes the session and results in
// ErrNotAuthenticated.
func (s *Service) CurrentUser(ctx context.Context) (*User, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.api.Verify(ctx, sess.Token)

	var statusErr *StatusError

	switch {
	case errors.As(err, &statusErr) && statusErr.Reauth():
		if err := s.repo.DeleteSession(ctx, s.profile); err != nil {
			slog.WarnContext(ctx, "Failed to delete stale session", slog.Any("error", err))
		}

		return nil, ErrNotAuthenticated
	case err != nil:
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}

	return user, nil
}

// session loads the stored session, mapping a missing one to ErrNotAuthenticated.
func (s *Service) session(ctx context.Context) (*AuthSession, error) {
	sess, err := s.repo.GetSession(ctx, s.profile)

	switch {
	case errors.Is(err, ErrNoSession):
		return nil, ErrNotAuthenticated
	case err != nil:
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if sess.Token == "" || sess.UserID == 0 {
		return nil, ErrNotAuthenticated
	}

	return sess, nil
}

func isStatus(err error, status int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Status == status
}

func isUnauthorized(err error) bool {
	return isStatus(err, http.StatusUnauthorized)
}
