// Package config provides environment-driven configuration for all
// subsystems: worker pool, event pipeline, LLM providers, HTTP server,
// cache, and retention.
package config

import (
	"os"
	"strconv"
	"time"
)

// getEnvOrDefault returns the value of the environment variable or the
// default when unset or empty.
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt parses an integer environment variable, falling back to the
// default on absence or parse error.
func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

// getEnvDuration parses a duration environment variable (Go duration
// syntax, e.g. "30s"), falling back to the default on absence or parse
// error.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
