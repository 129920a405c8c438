package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// envOrDefault returns the trimmed value of key. Values from a .env file often
// carry stray whitespace around paths and URLs.
func envOrDefault(key, defaultValue string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val != "" {
		return val
	}
	return defaultValue
}

func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := envOrDefault(key, "")
	if raw == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

// intEnvOrDefault accepts positive integers only; team ids and ports are never zero.
func intEnvOrDefault(key string, defaultValue int) int {
	raw := envOrDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw := envOrDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}
