// Package config reads service settings from the environment.
//
// Binaries call godotenv.Load before Load so a local .env file can supply values.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port            string
	DatabaseURL     string
	RedisAddr       string
	RedisPassword   string
	CacheTTL        time.Duration
	ClampHaversine  bool
	LogLevel        string
	LogPretty       bool
	SeedPath        string
	MaxBatch        int
	// Radius applied by /nearby when the request omits radius_km; 0 is unbounded.
	DefaultRadiusKm float64
}

// Load builds a Config from the environment, applying defaults for unset keys.
func Load() Config {
	return Config{
		Port:            Get("PORT", "8080"),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisAddr:       strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		CacheTTL:        GetDuration("CACHE_TTL", 24*time.Hour),
		ClampHaversine:  GetBool("CLAMP_HAVERSINE", true),
		LogLevel:        Get("LOG_LEVEL", "info"),
		LogPretty:       GetBool("LOG_PRETTY", false),
		SeedPath:        Get("SEED_PATH", "data/seeds/points.csv"),
		MaxBatch:        GetInt("MAX_BATCH", 10000),
		DefaultRadiusKm: GetFloat("DEFAULT_RADIUS_KM", 0),
	}
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Malformed values fall back the same way unset ones do.
func GetBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(Get(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func GetInt(key string, fallback int) int {
	v, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func GetFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(Get(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func GetDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(Get(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
