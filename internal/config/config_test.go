package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "memory", cfg.Storage.Type)
	assert.Empty(t, cfg.Proctors)

	ttl, err := cfg.TokenTTL()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 9090
storage:
  type: redis
  redis_url: redis://redis:6379
jwt:
  signing_key: test-secret
  token_ttl: 1h
proctors:
  - username: admin
    password: admin123
  - username: second
    password_hash: $2a$10$notarealhash
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, "redis", cfg.Storage.Type)
	assert.Equal(t, "test-secret", cfg.JWT.SigningKey)
	require.Len(t, cfg.Proctors, 2)
	assert.Equal(t, "admin", cfg.Proctors[0].Username)
	assert.Equal(t, "admin123", cfg.Proctors[0].Password)
	assert.Equal(t, "$2a$10$notarealhash", cfg.Proctors[1].PasswordHash)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0600))

	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadRejectsBadStorageType(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "postgres")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadRejectsAccountWithoutCredential(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("proctors:\n  - username: admin\n"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadTokenTTL(t *testing.T) {
	t.Setenv("JWT_TOKEN_TTL", "soon")

	_, err := Load("")
	assert.Error(t, err)
}
