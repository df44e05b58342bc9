package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config holds everything the process reads from the environment at boot.
// FORCE_HEALTHY is deliberately absent: operators flip it at runtime through
// a ConfigMap update, so it is re-read on every health evaluation instead of
// being cached here (see ForceHealthy).
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	// BrokenStartup enables the intentionally broken experimental feature,
	// crashing the process during boot. Used to stage CrashLoopBackOff
	// scenarios for remediation tooling.
	BrokenStartup bool
}

// Load parses the environment and applies the documented default fallbacks.
// Every variable is optional; the defaults point at a local Postgres.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "todos"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		BrokenStartup: getBool("ENABLE_BROKEN_STARTUP", false),
	}
}

// DatabaseURL assembles the Postgres connection string from the individual
// DB_* variables. Credentials are escaped so passwords with reserved
// characters survive the round-trip.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// ForceHealthy reports whether the FORCE_HEALTHY override is active. It hits
// the environment on every call: the override must take effect the moment an
// operator updates it, without a process restart.
func ForceHealthy() bool {
	return strings.EqualFold(os.Getenv("FORCE_HEALTHY"), "true")
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return strings.EqualFold(value, "true")
}
