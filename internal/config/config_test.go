package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
server:
  host: "127.0.0.1"
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "memberdir"
  password: "pw"
  database: "memberdir_test"
  ssl_mode: "disable"
jwt:
  secret: "test-secret-that-is-at-least-32-chars"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 60*24*7, cfg.JWT.RefreshTokenExpiry)
	assert.Equal(t, 60, cfg.Dedup.WindowSeconds)
	assert.Equal(t, 10, cfg.RateLimit.SubmitPerMinute)
	assert.Equal(t, 5, cfg.RateLimit.LoginPerMinute)
	assert.Equal(t, "0 0 8 * * *", cfg.Scheduler.PendingDigest)
	assert.Equal(t, "0 30 2 * * *", cfg.Scheduler.PurgeStaleRequests)
	assert.Equal(t, 180, cfg.Retention.NeedsUpdateDays)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("JWT_SECRET", "env-secret-that-is-also-32-chars-long")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "env-secret-that-is-also-32-chars-long", cfg.JWT.Secret)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("ShortJWTSecret", func(t *testing.T) {
		content := `
server:
  port: 8080
database:
  host: "localhost"
  user: "memberdir"
  database: "memberdir_test"
jwt:
  secret: "too-short"
`
		_, err := Load(writeConfig(t, content))
		assert.ErrorContains(t, err, "JWT secret must be at least 32 characters")
	})

	t.Run("MissingDatabaseHost", func(t *testing.T) {
		content := `
server:
  port: 8080
database:
  user: "memberdir"
  database: "memberdir_test"
jwt:
  secret: "test-secret-that-is-at-least-32-chars"
`
		_, err := Load(writeConfig(t, content))
		assert.ErrorContains(t, err, "database host is required")
	})

	t.Run("InvalidPort", func(t *testing.T) {
		content := `
server:
  port: 0
database:
  host: "localhost"
  user: "memberdir"
  database: "memberdir_test"
jwt:
  secret: "test-secret-that-is-at-least-32-chars"
`
		_, err := Load(writeConfig(t, content))
		assert.ErrorContains(t, err, "invalid server port")
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load("/does/not/exist.yaml")
		assert.Error(t, err)
	})
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalYAML))
	require.NoError(t, err)

	assert.Equal(t,
		"postgres://memberdir:pw@localhost:5432/memberdir_test?sslmode=disable",
		cfg.GetDatabaseConnectionString())
	assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
}
