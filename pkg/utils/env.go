package utils

import "os"

// EnvOrDefault returns the named environment variable's value, or
// fallback if it is unset or empty.
func EnvOrDefault(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
