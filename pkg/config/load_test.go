package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesto/pkg/config"
)

type sampleConfig struct {
	Port   int    `env:"SAMPLE_PORT" env-default:"3000"`
	Secret string `env:"SAMPLE_SECRET" env-required:"true"`
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("reads environment when env file is absent", func(t *testing.T) {
		t.Setenv("SAMPLE_SECRET", "from-env")

		cfg, err := config.Load[sampleConfig](ctx, "test", filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "from-env", cfg.Secret)
	})

	t.Run("reads env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.env")
		require.NoError(t, os.WriteFile(path, []byte("SAMPLE_PORT=4000\nSAMPLE_SECRET=from-file\n"), 0o600))

		cfg, err := config.Load[sampleConfig](ctx, "test", path)
		require.NoError(t, err)
		assert.Equal(t, 4000, cfg.Port)
		assert.Equal(t, "from-file", cfg.Secret)
	})

	t.Run("fails when required variable is missing", func(t *testing.T) {
		t.Setenv("SAMPLE_SECRET", "")
		require.NoError(t, os.Unsetenv("SAMPLE_SECRET"))

		cfg, err := config.Load[sampleConfig](ctx, "test", "")
		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}
