package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// CreateUser inserts a user with an already hashed password. It returns ErrUserExists for a taken username.
func (db *DB) CreateUser(ctx context.Context, username, passwordHash string) (*User, error) {
	if _, err := db.GetUserByName(ctx, username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	var u User

	row := db.conn.QueryRowContext(ctx,
		db.rebind(`INSERT INTO auth_users (username, password_hash) VALUES (?, ?) RETURNING id, username, password_hash, created_at`),
		username, passwordHash,
	)

	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, timestamp{&u.CreatedAt}); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserExists
		}

		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &u, nil
}

// GetUserByName returns the user with the username or ErrUserNotFound.
func (db *DB) GetUserByName(ctx context.Context, username string) (*User, error) {
	var u User

	row := db.conn.QueryRowContext(ctx,
		db.rebind(`SELECT id, username, password_hash, created_at FROM auth_users WHERE username = ?`),
		username,
	)

	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, timestamp{&u.CreatedAt})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}

	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
