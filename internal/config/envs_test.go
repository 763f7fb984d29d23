package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEnvDefaults(t *testing.T) {
	for _, key := range []string{"LABYRINTH_DB", "LABYRINTH_SSH_ADDR", "LABYRINTH_HTTP_ADDR", "LABYRINTH_LOG_LEVEL", "GIN_MODE", "LABYRINTH_FPS"} {
		t.Setenv(key, "")
	}

	env := ReadEnv()
	assert.Equal(t, DefaultEnv(), env)
	assert.Equal(t, DefaultDBPath, env.DBPath)
}

func TestReadEnvOverrides(t *testing.T) {
	t.Setenv("LABYRINTH_DB", "/tmp/maze.db")
	t.Setenv("LABYRINTH_SSH_ADDR", "127.0.0.1:2323")
	t.Setenv("LABYRINTH_HTTP_ADDR", ":9000")
	t.Setenv("LABYRINTH_LOG_LEVEL", "debug")
	t.Setenv("LABYRINTH_FPS", "30")

	env := ReadEnv()
	assert.Equal(t, "/tmp/maze.db", env.DBPath)
	assert.Equal(t, "127.0.0.1:2323", env.SSHAddr)
	assert.Equal(t, ":9000", env.HTTPAddr)
	assert.Equal(t, "debug", env.LogLevel)
	assert.Equal(t, 30, env.FPS)
}

func TestReadEnvMalformedInt(t *testing.T) {
	t.Setenv("LABYRINTH_FPS", "fast")
	assert.Equal(t, 60, ReadEnv().FPS)
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("LABYRINTH_HTTP_ADDR", "")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LABYRINTH_SSH_ADDR=10.0.0.1:22\n"), 0o600))

	// godotenv.Load never overrides variables already present, so clear it
	// through t.Setenv first to have it restored afterwards.
	t.Setenv("LABYRINTH_SSH_ADDR", "")
	require.NoError(t, os.Unsetenv("LABYRINTH_SSH_ADDR"))

	env, loaded := LoadEnv(path)
	require.True(t, loaded)
	assert.Equal(t, "10.0.0.1:22", env.SSHAddr)
	assert.Equal(t, "0.0.0.0:8080", env.HTTPAddr)

	_, loaded = LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.False(t, loaded)
}
