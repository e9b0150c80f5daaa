package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
)

// Config holds the settings of both the booking screen and the reference store.
type Config struct {
	ScreenAddr string
	StoreAddr  string
	LogLevel   string

	// Remote store as seen from the screen
	StoreBaseURL string
	StoreTimeout time.Duration
	SyncAdvance  bool

	// Reference store
	StoreDBPath string

	// Local appointment cache
	CacheBackend  string
	CacheDir      string
	CacheKey      string
	RedisAddr     string
	RedisPassword string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("failed to read .env file: %v", err)
	}

	return &Config{
		ScreenAddr:    getEnv("SCREEN_ADDR", ":3000"),
		StoreAddr:     getEnv("STORE_ADDR", ":5000"),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		StoreBaseURL:  strings.TrimRight(getEnv("STORE_BASE_URL", "http://localhost:5000"), "/"),
		StoreTimeout:  getEnvAsDuration("STORE_TIMEOUT", 10*time.Second),
		SyncAdvance:   getEnvAsBool("SYNC_ADVANCE", false),
		StoreDBPath:   getEnv("STORE_DB_PATH", "./database.db"),
		CacheBackend:  strings.ToLower(getEnv("CACHE_BACKEND", CacheBackendFile)),
		CacheDir:      getEnv("CACHE_DIR", "./data"),
		CacheKey:      getEnv("CACHE_KEY", "appointments"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}
}

// GommonLevel maps LOG_LEVEL onto the gommon logger levels.
func (c *Config) GommonLevel() log.Lvl {
	switch c.LogLevel {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
