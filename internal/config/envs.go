package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultDBPath is the sqlite location used when LABYRINTH_DB is unset.
// storage.Open expands the leading ~.
const DefaultDBPath = "~/.labyrinth/labyrinth.db"

// Env holds process settings read from the environment.
// Each field is the default for the matching CLI flag.
type Env struct {
	DBPath   string // LABYRINTH_DB
	SSHAddr  string // LABYRINTH_SSH_ADDR
	HTTPAddr string // LABYRINTH_HTTP_ADDR
	LogLevel string // LABYRINTH_LOG_LEVEL
	GinMode  string // GIN_MODE
	FPS      int    // LABYRINTH_FPS
}

// DefaultEnv returns settings used when nothing is set.
func DefaultEnv() Env {
	return Env{
		DBPath:   DefaultDBPath,
		SSHAddr:  "0.0.0.0:2222",
		HTTPAddr: "0.0.0.0:8080",
		LogLevel: "info",
		GinMode:  "release",
		FPS:      60,
	}
}

// LoadEnv loads an optional .env file and reads overrides from the environment.
// The returned bool reports whether a .env file was loaded.
func LoadEnv(files ...string) (Env, bool) {
	loaded := godotenv.Load(files...) == nil
	return ReadEnv(), loaded
}

// ReadEnv reads overrides from the current environment without touching .env files.
func ReadEnv() Env {
	env := DefaultEnv()
	env.DBPath = getEnvWithDefault("LABYRINTH_DB", env.DBPath)
	env.SSHAddr = getEnvWithDefault("LABYRINTH_SSH_ADDR", env.SSHAddr)
	env.HTTPAddr = getEnvWithDefault("LABYRINTH_HTTP_ADDR", env.HTTPAddr)
	env.LogLevel = getEnvWithDefault("LABYRINTH_LOG_LEVEL", env.LogLevel)
	env.GinMode = getEnvWithDefault("GIN_MODE", env.GinMode)
	env.FPS = getEnvAsIntWithDefault("LABYRINTH_FPS", env.FPS)
	return env
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault parses an integer variable, keeping the default when unset or malformed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
