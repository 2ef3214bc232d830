package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: activities-service
`)

	cfg, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 30000, cfg.Cache.TTL)
}

func TestLoadFromFile_ExplicitValues(t *testing.T) {
	path := writeConfigFile(t, `
server:
  host: 127.0.0.1
  port: 9090
cache:
  enabled: true
  redis:
    address: localhost:6379
logging:
  level: debug
  format: console
`)

	cfg, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Cache.Redis.Address)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFile_CacheWithoutRedisAddressFails(t *testing.T) {
	path := writeConfigFile(t, `
cache:
  enabled: true
`)

	_, err := LoadFromFile(path)

	assert.ErrorContains(t, err, "cache.redis.address")
}

func TestLoadFromFile_MissingSeedFileFails(t *testing.T) {
	path := writeConfigFile(t, `
catalog:
  seed_file: /nonexistent/seed.json
`)

	_, err := LoadFromFile(path)

	assert.ErrorContains(t, err, "seed_file")
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, int64(1500), GetDuration(1500).Milliseconds())
}
