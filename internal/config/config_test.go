package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "json", cfg.Extensions)
	assert.Equal(t, "pretty", cfg.Output)
	assert.False(t, cfg.CaseSensitive)
	assert.Equal(t, 1, cfg.Workers)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scout.yaml")
	content := `
extensions: "json,txt"
output: json
case_sensitive: true
workers: 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "json,txt", cfg.Extensions)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.CaseSensitive)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extensions: yml\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "yml", cfg.Extensions)
	assert.Equal(t, "pretty", cfg.Output)
	assert.Equal(t, 1, cfg.Workers)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad output mode", "output: xml\n"},
		{"zero workers", "workers: 0\n"},
		{"malformed yaml", "output: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scout.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}
