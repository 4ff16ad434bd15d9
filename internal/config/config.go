package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	CacheTTL     time.Duration
	FetchTimeout time.Duration

	// StoreDriver selects the cache-store backend: "memory" or "postgres".
	StoreDriver string

	PGHost     string
	PGPort     int
	PGUser     string
	PGPassword string
	PGDatabase string

	LogLevel string
	LogFile  string
}

func Load() Config {
	return Config{
		CacheTTL:     parseDurationEnv("CACHE_TTL", 10*time.Minute),
		FetchTimeout: parseDurationEnv("FETCH_TIMEOUT", 20*time.Second),
		StoreDriver:  getenv("STORE_DRIVER", "memory"),
		PGHost:       getenv("POSTGRES_HOST", "localhost"),
		PGPort:       parseIntEnv("POSTGRES_PORT", 5432),
		PGUser:       getenv("POSTGRES_USER", "postgres"),
		PGPassword:   getenv("POSTGRES_PASSWORD", "changeme"),
		PGDatabase:   getenv("POSTGRES_DBNAME", "scrapefeed"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFile:      getenv("LOG_FILE", ""),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
