package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacexdash/internal/errors"
)

func TestDefaultLayoutOptions(t *testing.T) {
	layout := DefaultLayout()

	require.NoError(t, layout.Validate())
	assert.Equal(t, []SiteOption{
		{Label: "All Sites", Value: "ALL"},
		{Label: "Cape Canaveral", Value: "Cape Canaveral"},
		{Label: "Kennedy Space Center", Value: "Kennedy Space Center"},
		{Label: "Vandenberg", Value: "Vandenberg"},
		{Label: "Guiana Space Centre", Value: "Guiana Space Centre"},
	}, layout.SiteOptions())

	assert.True(t, layout.AllowsSite("ALL"))
	assert.True(t, layout.AllowsSite("Vandenberg"))
	assert.False(t, layout.AllowsSite("vandenberg"))
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
	}{
		{"no sites", func(l *Layout) { l.Sites = nil }},
		{"sentinel as site", func(l *Layout) { l.Sites = []string{"ALL"} }},
		{"duplicate site", func(l *Layout) { l.Sites = []string{"Vandenberg", "Vandenberg"} }},
		{"zero step", func(l *Layout) { l.SliderStep = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := DefaultLayout()
			tt.mutate(&layout)
			err := layout.Validate()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestLoadLayoutErrors(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sites: [unterminated"), 0o600))
	_, err = LoadLayout(bad)
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}
