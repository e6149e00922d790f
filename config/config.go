package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SummaryCacheTTL   time.Duration
	SnapshotCron      string
	AllowedOrigins    []string
	MigrationsEnabled bool
}

// Load reads the service settings from the environment. The .env file is
// loaded by main before this runs.
func Load() *Config {
	return &Config{
		SummaryCacheTTL:   parseDuration(getEnv("SUMMARY_CACHE_TTL", "10m"), 10*time.Minute),
		SnapshotCron:      getEnv("SNAPSHOT_CRON", "5 0 * * *"),
		AllowedOrigins:    parseList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		MigrationsEnabled: parseBool(getEnv("MIGRATIONS_ENABLED", "true")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %q, using %s", s, fallback)
		return fallback
	}
	return d
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		log.Printf("Invalid bool %q, using false", s)
		return false
	}
	return b
}

func parseList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
