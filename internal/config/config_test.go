package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
env: "prod"
http_server:
  address: "0.0.0.0:9090"
  timeout: 2s
database:
  host: "db"
  port: 6543
  user: "events"
  password: "secret"
  dbname: "events_test"
auth:
  secret: "jwt-secret"
books:
  url: "http://books:8000"
pagination:
  default_limit: 10
  max_limit: 50
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "0.0.0.0:9090", cfg.Address)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "jwt-secret", cfg.Auth.Secret)
	assert.Equal(t, "http://books:8000", cfg.Books.URL)
	assert.Equal(t, 5*time.Second, cfg.Books.Timeout)
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 50, cfg.Pagination.MaxLimit)
	assert.Equal(t,
		"host=db port=6543 user=events password=secret dbname=events_test sslmode=disable",
		cfg.Database.DSN(),
	)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("BOOKS_URL", "http://books.local")
	t.Setenv("DB_PORT", "5433")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "env-secret", cfg.Auth.Secret)
	assert.Equal(t, "http://books.local", cfg.Books.URL)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 20, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoadRejectsBadPagination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
auth:
  secret: "s"
books:
  url: "http://books"
pagination:
  default_limit: 50
  max_limit: 10
`), 0o600)
	require.NoError(t, err)

	_, err = Load(path)
	require.Error(t, err)
}
