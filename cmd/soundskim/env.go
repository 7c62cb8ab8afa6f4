// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// loadEnv pulls an optional .env file into the process environment so
// SOUNDSKIM_* variables can supply flag defaults. A missing .env is
// not an error.
func loadEnv() {
	_ = godotenv.Load()
}

// envOr gets an environment variable or returns a default value.
func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// envOrInt gets an environment variable as an int or returns a default
// value.
func envOrInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if number, err := strconv.Atoi(value); err == nil {
			return number
		}
	}

	return fallback
}
