package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultEnv, cfg.Env)
	assert.Equal(t, defaultRedisURL, cfg.RedisURL)
	assert.Equal(t, "root:password@tcp(127.0.0.1:3306)/florarium?charset=utf8mb4&parseTime=True&loc=Local", cfg.DSN)
	assert.True(t, cfg.IsDev())
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 8080
env: production
jwt_secret: s3cret
allowed_origins:
  - https://florarium.example
database:
  host: db.internal
  port: 3307
  user: flora
  password: hunter2
  name: flora_prod
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, []string{"https://florarium.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "flora:hunter2@tcp(db.internal:3307)/flora_prod?charset=utf8mb4&parseTime=True&loc=Local", cfg.DSN)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: 8080\ndsn: file-dsn\n"), 0o644))

	t.Setenv("PORT", "9090")
	t.Setenv("DSN", "env:dsn@tcp(h:3306)/db")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , https://b.example ,")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "env:dsn@tcp(h:3306)/db", cfg.DSN)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not a port\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
