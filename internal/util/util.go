package util

import (
	"math"
	"os"
)

// Getenv returns the environment variable, or fallback when it is unset or empty
func Getenv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}

	return fallback
}

// SetEnv sets an environment variable and returns a function that restores the previous value
func SetEnv(key, val string) func() {
	orig, found := os.LookupEnv(key)
	_ = os.Setenv(key, val)
	return func() {
		if !found {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}

// Round2 rounds to two decimal places for display
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
