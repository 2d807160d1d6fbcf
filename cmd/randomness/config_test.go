package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults without file", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), false)
		require.NoError(err)
		require.Equal(DefaultConfig(), cfg)
	})

	t.Run("missing required file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), true)
		require.Error(t, err)
	})

	t.Run("overlays file", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)

		path := filepath.Join(t.TempDir(), "randomness.yaml")
		require.NoError(os.WriteFile(path, []byte("database: /tmp/x.db\nseed: 42\nverbose: true\n"), 0o600))

		cfg, err := LoadConfig(path, true)
		require.NoError(err)
		require.Equal("/tmp/x.db", cfg.Database)
		require.NotNil(cfg.Seed)
		require.Equal(uint64(42), *cfg.Seed)
		require.True(cfg.Verbose)
		require.Equal(DefaultConfig().Count, cfg.Count)
	})

	t.Run("rejects bad values", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "randomness.yaml")
		require.NoError(t, os.WriteFile(path, []byte("count: -3\n"), 0o600))

		_, err := LoadConfig(path, true)
		require.Error(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "randomness.yaml")
		require.NoError(t, os.WriteFile(path, []byte("count: [1\n"), 0o600))

		_, err := LoadConfig(path, true)
		require.Error(t, err)
	})
}
