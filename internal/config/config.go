package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string
	Port   int

	// Postgres (lib/pq DSN)
	DBDSN             string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// Redis
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Cache
	ProjectCacheTTL  time.Duration
	BirdseyeCacheTTL time.Duration

	// Aggregation goroutines per request; 0 means GOMAXPROCS.
	AggregationShards int

	LogLevel  string
	LogFormat string

	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.Port = getInt("PORT", 8080)

	// --- Postgres: POSTGRES_DSN first, DATABASE_URL as fallback
	cfg.DBDSN = firstNonEmpty(
		strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		strings.TrimSpace(os.Getenv("DATABASE_URL")),
	)
	cfg.DBMaxOpenConns = getInt("DB_MAX_OPEN_CONNS", 20)
	cfg.DBMaxIdleConns = getInt("DB_MAX_IDLE_CONNS", 10)
	cfg.DBConnMaxLifetime = getDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute)

	// --- Redis
	cfg.RedisAddr = getEnv("REDIS_ADDR", "127.0.0.1:6379")
	cfg.RedisPass = getEnv("REDIS_PASSWORD", "")
	cfg.RedisDB = getInt("REDIS_DB", 0)

	// --- Cache
	cfg.ProjectCacheTTL = getDuration("PROJECT_CACHE_TTL", 10*time.Minute)
	cfg.BirdseyeCacheTTL = getDuration("BIRDSEYE_CACHE_TTL", time.Minute)

	cfg.AggregationShards = getInt("AGGREGATION_SHARDS", 0)

	// --- Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "json")

	cfg.ShutdownTimeout = getDuration("SHUTDOWN_TIMEOUT", 5*time.Second)

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("missing database config: provide POSTGRES_DSN or DATABASE_URL")
	}
	if cfg.AggregationShards < 0 {
		return nil, fmt.Errorf("invalid AGGREGATION_SHARDS=%d", cfg.AggregationShards)
	}

	return cfg, nil
}

// Addr is the fiber listen address.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getDuration(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
