package config

import (
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SCREEN_ADDR", "STORE_ADDR", "LOG_LEVEL", "STORE_BASE_URL", "STORE_TIMEOUT", "SYNC_ADVANCE",
		"STORE_DB_PATH", "CACHE_BACKEND", "CACHE_DIR", "CACHE_KEY", "REDIS_ADDR", "REDIS_PASSWORD",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":3000", cfg.ScreenAddr)
	assert.Equal(t, ":5000", cfg.StoreAddr)
	assert.Equal(t, "http://localhost:5000", cfg.StoreBaseURL)
	assert.Equal(t, 10*time.Second, cfg.StoreTimeout)
	assert.False(t, cfg.SyncAdvance)
	assert.Equal(t, CacheBackendFile, cfg.CacheBackend)
	assert.Equal(t, "appointments", cfg.CacheKey)
	assert.Equal(t, log.INFO, cfg.GommonLevel())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_BASE_URL", "http://store.internal:5000/")
	t.Setenv("STORE_TIMEOUT", "3s")
	t.Setenv("SYNC_ADVANCE", "true")
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()

	assert.Equal(t, "http://store.internal:5000", cfg.StoreBaseURL)
	assert.Equal(t, 3*time.Second, cfg.StoreTimeout)
	assert.True(t, cfg.SyncAdvance)
	assert.Equal(t, CacheBackendRedis, cfg.CacheBackend)
	assert.Equal(t, log.DEBUG, cfg.GommonLevel())
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("STORE_TIMEOUT", "soon")
	t.Setenv("SYNC_ADVANCE", "maybe")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.StoreTimeout)
	assert.False(t, cfg.SyncAdvance)
}
