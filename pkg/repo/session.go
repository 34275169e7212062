package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ksysoev/waterlily/pkg/core"
	"github.com/redis/go-redis/v9"
)

const defaultSessionTTL = 24 * time.Hour

type Config struct {
	RedisAddr  string        `mapstructure:"redis_addr"`
	Password   string        `mapstructure:"redis_password"`
	KeyPrefix  string        `mapstructure:"key_prefix"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// Session stores authenticated sessions in Redis, one key per profile.
type Session struct {
	db        *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// New initializes and returns a new Session store configured with the provided Config.
func New(cfg Config) *Session {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.Password,
	})

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &Session{
		db:        rdb,
		keyPrefix: cfg.KeyPrefix,
		ttl:       ttl,
	}
}

// Close terminates the connection to the Redis database and returns an error if the operation fails.
func (s *Session) Close() error {
	return s.db.Close()
}

// SaveSession stores the session for the profile, replacing any previous one. The key expires with the token lifetime.
func (s *Session) SaveSession(ctx context.Context, profile string, sess *core.AuthSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.db.Set(ctx, s.key(profile), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession returns the stored session of the profile or core.ErrNoSession when there is none.
func (s *Session) GetSession(ctx context.Context, profile string) (*core.AuthSession, error) {
	data, err := s.db.Get(ctx, s.key(profile)).Bytes()

	switch {
	case errors.Is(err, redis.Nil):
		return nil, core.ErrNoSession
	case err != nil:
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess core.AuthSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// DeleteSession removes the stored session of the profile. Deleting a missing session is not an error.
func (s *Session) DeleteSession(ctx context.Context, profile string) error {
	if err := s.db.Del(ctx, s.key(profile)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *Session) key(profile string) string {
	return s.keyPrefix + "session:" + profile
}
