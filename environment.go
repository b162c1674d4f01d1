package render

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the provided files into the
// process environment, or from .env when none are given.
//
// Values already present in the environment win over file values.
func LoadEnv(files ...string) error {
	return godotenv.Load(files...)
}

// EnvVarOrBool gets the environment variable for the provided key and
// returns whether it matches "true" or "false" (after lower casing it)
// or the default value.
func EnvVarOrBool(key string, def bool) bool {
	val := strings.ToLower(os.Getenv(key))
	if val == "true" {
		return true
	}

	if val == "false" {
		return false
	}

	return def
}

// EnvVarOrString gets the environment variable for the provided key or
// returns the provided default string.
func EnvVarOrString(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	return val
}
