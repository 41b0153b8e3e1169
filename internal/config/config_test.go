package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DATABASE_URL=postgres://localhost/games\n"), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/games", cfg.DatabaseURL)
}

func TestLoadEnvVarOverridesFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DATABASE_URL=postgres://localhost/from_file\n"), 0o644))
	chdir(t, dir)
	t.Setenv("DATABASE_URL", "postgres://localhost/from_env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/from_env", cfg.DatabaseURL)
}

func TestLoadWithoutEnvFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://localhost/env_only")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/env_only", cfg.DatabaseURL)
}
