package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // sqlite driver
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	ErrUserExists      = errors.New("username already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrUnknownDriver   = errors.New("unknown database driver")
	ErrUnknownQuestion = errors.New("unknown question")
)

type Config struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Seed   bool   `mapstructure:"seed"`
}

type User struct {
	CreatedAt    time.Time
	Username     string
	PasswordHash string
	ID           int64
}

type Question struct {
	CreatedAt   time.Time
	Title       string
	Description string
	InputType   string
	Field       string
	ID          int64
}

// Answer is one element of a submitted answer list.
type Answer struct {
	Text       string
	QuestionID int64
}

// Response is a stored answer.
type Response struct {
	CreatedAt  time.Time
	Answer     string
	ID         int64
	UserID     int64
	QuestionID int64
}

// UserAnswer is a stored answer joined with its question.
type UserAnswer struct {
	Response
	Title       string
	Description string
	InputType   string
	Field       string
}

// DB is the relational store of users, questions and responses.
type DB struct {
	conn   *sql.DB
	driver string
}

// Open connects to the database, applies the schema and optionally seeds the default questions.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}

	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}

	dsn := cfg.DSN
	if driver == DriverSQLite {
		dsn = sqliteDSN(dsn)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// sqlite allows a single writer; a shared connection also keeps in-memory databases alive.
		conn.SetMaxOpenConns(1)
	}

	db := &DB{conn: conn, driver: driver}

	if err := db.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	if cfg.Seed {
		if err := db.SeedQuestions(ctx, DefaultQuestions()); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to seed questions: %w", err)
		}
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

func (db *DB) migrate(ctx context.Context) error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if db.driver == DriverPostgres {
		serial = "SERIAL PRIMARY KEY"
	}

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS auth_users (
			id ` + serial + `,
			username VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id ` + serial + `,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			input_type VARCHAR(20) NOT NULL,
			field VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS responses (
			id ` + serial + `,
			user_id INTEGER NOT NULL REFERENCES auth_users(id),
			question_id INTEGER NOT NULL REFERENCES questions(id),
			answer TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.conn.ExecContext(ctx, m); err != nil {
			return err
		}
	}

	return nil
}

// sqliteDSN enables foreign key enforcement, which sqlite leaves off by default.
func sqliteDSN(dsn string) string {
	if dsn == "" {
		dsn = "file:waterlily.db"
	}

	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	return dsn + sep + "_pragma=foreign_keys(1)"
}

// rebind converts ? placeholders to $n for postgres.
func (db *DB) rebind(query string) string {
	if db.driver != DriverPostgres {
		return query
	}

	var sb strings.Builder

	n := 0

	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
