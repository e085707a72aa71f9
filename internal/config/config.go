// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "4000".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// VerifierPrivateKey is the hex secp256k1 key used to sign attestations.
	// Optional: without it the server starts but refuses to sign.
	VerifierPrivateKey string

	// CheckInOpensBefore and CheckInGrace bound the check-in window around
	// a commitment's travel date.
	CheckInOpensBefore time.Duration
	CheckInGrace       time.Duration

	LeaderboardTTL time.Duration
	PoolBalanceTTL time.Duration

	// ExpirySweepInterval is how often overdue commitments are expired.
	// Zero disables the sweep.
	ExpirySweepInterval time.Duration

	// RunMigrations applies pending migrations at startup. Defaults to true.
	RunMigrations bool
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set or any
// values that could not be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:               getEnv("PORT", "4000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSOrigins:        splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000,https://wanderify.xyz")),
		VerifierPrivateKey: os.Getenv("VERIFIER_PRIVATE_KEY"),
	}

	var missing, invalid []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	durations := []struct {
		key      string
		fallback string
		dst      *time.Duration
	}{
		{"CHECKIN_OPENS_BEFORE", "24h", &cfg.CheckInOpensBefore},
		{"CHECKIN_GRACE", "24h", &cfg.CheckInGrace},
		{"LEADERBOARD_TTL", "1h", &cfg.LeaderboardTTL},
		{"POOL_BALANCE_TTL", "5m", &cfg.PoolBalanceTTL},
		{"EXPIRY_SWEEP_INTERVAL", "1m", &cfg.ExpirySweepInterval},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(getEnv(d.key, d.fallback))
		if err != nil || v < 0 {
			invalid = append(invalid, d.key)
			continue
		}
		*d.dst = v
	}

	run, err := strconv.ParseBool(getEnv("RUN_MIGRATIONS", "true"))
	if err != nil {
		invalid = append(invalid, "RUN_MIGRATIONS")
	}
	cfg.RunMigrations = run

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
