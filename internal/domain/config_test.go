package domain

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.View.PageSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"http://localhost:5000", "http://localhost:5000", false},
		{"https://api.example.com/v1/", "https://api.example.com/v1", false},
		{"  http://127.0.0.1:3000//  ", "http://127.0.0.1:3000", false},
		{"", "", true},
		{"localhost:5000", "", true},
		{"ftp://example.com", "", true},
		{"http://", "", true},
		{"http://example.com/?x=1", "", true},
		{"http://exa mple.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBaseURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Validate_FillsZeroValues(t *testing.T) {
	cfg := &Config{API: APIConfig{BaseURL: "http://h:1/"}}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://h:1", cfg.API.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.API.Timeout)
	assert.Equal(t, DefaultPageSize, cfg.View.PageSize)
}

func TestConfig_Validate_BadURL(t *testing.T) {
	cfg := &Config{API: APIConfig{BaseURL: "not a url"}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidBaseURL)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/cfg", "tasktable", "config.toml"), GlobalConfigPath("/cfg"))
	assert.Equal(t, filepath.Join("/state", "logs", "tasktable.log"), LogPath("/state"))
}
