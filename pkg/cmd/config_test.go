package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(&args{})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.API.URL)
	assert.Equal(t, "localhost:6379", cfg.Repo.RedisAddr)
	assert.Equal(t, "Personal Information", cfg.Survey.MandatoryGroup)
	assert.Equal(t, "default", cfg.Survey.Profile)
	assert.Equal(t, ":3000", cfg.Server.Listen)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.True(t, cfg.Store.Seed)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
api:
  url: http://survey.local
  timeout: 5s
repo:
  redis_addr: redis:6379
  session_ttl: 1h
survey:
  mandatory_group: Contact
server:
  listen: 127.0.0.1:8080
auth:
  jwt_secret: secret
  token_ttl: 2h
store:
  driver: postgres
  dsn: postgres://localhost/survey
  seed: false
ui:
  accessible: true
`)

	cfg, err := loadConfig(&args{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "http://survey.local", cfg.API.URL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "redis:6379", cfg.Repo.RedisAddr)
	assert.Equal(t, time.Hour, cfg.Repo.SessionTTL)
	assert.Equal(t, "Contact", cfg.Survey.MandatoryGroup)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Listen)
	assert.Equal(t, "secret", cfg.Auth.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.False(t, cfg.Store.Seed)
	assert.True(t, cfg.UI.Accessible)

	assert.NotContains(t, cfg.String(), "secret")
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("API_URL", "http://env.local")
	t.Setenv("SURVEY_MANDATORY_GROUP", "Contact")

	cfg, err := loadConfig(&args{})
	require.NoError(t, err)

	assert.Equal(t, "http://env.local", cfg.API.URL)
	assert.Equal(t, "Contact", cfg.Survey.MandatoryGroup)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(&args{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
