package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacexdash/internal/errors"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"DATA_SOURCE", "DATA_FILE", "DATABASE_URL", "LAYOUT_FILE", "PORT",
		"GIN_MODE", "PPROF_ENABLED", "PPROF_PORT", "CONFIDENCE_LEVEL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, SourceFile, cfg.Data.Source)
	assert.Equal(t, "spacex_launch_dash.csv", cfg.Data.File)
	assert.Equal(t, "8050", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.False(t, cfg.Profiling.Enabled)
	assert.Equal(t, 0.95, cfg.Data.Confidence)
	assert.Equal(t, DefaultLayout(), cfg.Layout)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_SOURCE", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/launches")
	t.Setenv("PORT", "9000")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("CONFIDENCE_LEVEL", "0.9")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, SourcePostgres, cfg.Data.Source)
	assert.Equal(t, "postgres://localhost/launches", cfg.Database.URL)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.Profiling.Enabled)
	assert.Equal(t, 0.9, cfg.Data.Confidence)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without url", map[string]string{"DATA_SOURCE": "postgres"}},
		{"unknown source", map[string]string{"DATA_SOURCE": "s3"}},
		{"confidence out of range", map[string]string{"CONFIDENCE_LEVEL": "1.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestLoadWithLayoutFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Launch Board\nsites: [Vandenberg, Boca Chica]\n"), 0o600))
	t.Setenv("LAYOUT_FILE", path)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "Launch Board", cfg.Layout.Title)
	assert.Equal(t, []string{"Vandenberg", "Boca Chica"}, cfg.Layout.Sites)
	assert.Equal(t, 1000, cfg.Layout.SliderStep, "unset keys keep defaults")
}
