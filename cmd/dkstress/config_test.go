package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRunSettings(t *testing.T) {
	t.Run("defaults survive an empty file", func(t *testing.T) {
		settings, err := loadRunSettings(writeConfig(t, ""))
		require.NoError(t, err)
		assert.Equal(t, defaultRunSettings(), settings)
	})

	t.Run("defined keys override defaults", func(t *testing.T) {
		settings, err := loadRunSettings(writeConfig(t, `
seed = 123
iterations = 500
structure = "array"

[weights]
push = 50
`))
		require.NoError(t, err)
		assert.Equal(t, uint64(123), settings.Seed)
		assert.Equal(t, 500, settings.Iterations)
		assert.Equal(t, "array", settings.Structure)
		assert.Equal(t, 50, settings.Weights.Push)

		defaults := defaultRunSettings()
		assert.Equal(t, defaults.Capacity, settings.Capacity)
		assert.Equal(t, defaults.Weights.Pop, settings.Weights.Pop)
	})

	t.Run("unknown structure is rejected", func(t *testing.T) {
		_, err := loadRunSettings(writeConfig(t, `structure = "tree"`))
		assert.Error(t, err)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := loadRunSettings(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})
}
