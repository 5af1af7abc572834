package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MrSnakeDoc/barky/internal/logger"
)

const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	Store      string // "sqlite" | "redis"
	SQLitePath string // database file, or ":memory:"
	SeedFile   string // default YAML file for `barky import`

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 10s)
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
}

// Load reads the configuration from BARKY_* environment variables.
// Malformed numeric, boolean or duration values fall back to their defaults.
func Load() *Config {
	return &Config{
		// Logging
		LogLevel:  getenv("BARKY_LOG_LEVEL", "warn"),
		PrettyLog: mustBool("BARKY_PRETTY_LOG", true),

		// Storage
		Store:      strings.ToLower(getenv("BARKY_STORE", StoreSQLite)),
		SQLitePath: getenv("BARKY_SQLITE_PATH", "barky.db"),
		SeedFile:   getenv("BARKY_SEED_FILE", ""),

		// Redis settings
		RedisAddr:           getenv("BARKY_REDIS_ADDR", "localhost:6379"),
		RedisUser:           getenv("BARKY_REDIS_USERNAME", ""),
		RedisPassword:       getenv("BARKY_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("BARKY_REDIS_DB", 0),
		RedisConnectTimeout: mustDuration("BARKY_REDIS_CONNECT_TIMEOUT", 10*time.Second),
		RedisRetryInterval:  mustDuration("BARKY_REDIS_RETRY_INTERVAL", 500*time.Millisecond),
		RedisMaxWait:        mustDuration("BARKY_REDIS_MAX_WAIT", 5*time.Second),
		RedisPingTimeout:    mustDuration("BARKY_REDIS_PING_TIMEOUT", 2*time.Second),
	}
}

// Validate checks the values that cannot be defaulted sensibly.
func (c *Config) Validate() error {
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q (want debug, info, warn or error)", c.LogLevel)
	}

	switch c.Store {
	case StoreSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("BARKY_SQLITE_PATH must not be empty when BARKY_STORE=%s", StoreSQLite)
		}
	case StoreRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("BARKY_REDIS_ADDR must not be empty when BARKY_STORE=%s", StoreRedis)
		}
	default:
		return fmt.Errorf("unknown store %q (want %q or %q)", c.Store, StoreSQLite, StoreRedis)
	}
	return nil
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	if c.RedisPassword != "" {
		c.RedisPassword = "***REDACTED***"
	}
	return c
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
