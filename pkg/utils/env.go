package utils

import (
	"os"
	"strconv"
	"time"
)

// GetEnv retrieves an environment variable;
// return default variable when missing.
func GetEnv(key, defKey string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defKey
}

func GetIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func GetDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
