//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/logs/shelf.log",
			expected: filepath.Join(home, "logs", "shelf.log"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/log/shelf.log",
			expected: "/var/log/shelf.log",
		},
		{
			name:     "relative path unchanged",
			input:    "shelf.log",
			expected: "shelf.log",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(xdg.ConfigHome, "mediashelf", "config.toml"), paths[0])
	assert.Equal(t, "config.toml", paths[len(paths)-1])
}

func TestLoadFrom_NoFilesGivesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFrom_EmptyFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", "")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "pretty", cfg.Log.Format)
	assert.True(t, cfg.UI.Color)
}

func TestLoadFrom_BasicConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", `
[log]
level = "DEBUG"
format = "json"
file = "~/shelf.log"

[ui]
color = false
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, filepath.Join(home, "shelf.log"), cfg.Log.File)
	assert.False(t, cfg.UI.Color)
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	user := writeConfig(t, dir, "user.toml", `
[log]
level = "warn"
format = "json"
`)
	local := writeConfig(t, dir, "local.toml", `
[log]
level = "debug"
`)

	cfg, err := LoadFrom(user, local)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", "invalid = [[[")

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestLoadFrom_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown level",
			content: "[log]\nlevel = \"loud\"\n",
			wantErr: `invalid level "loud"`,
		},
		{
			name:    "unknown format",
			content: "[log]\nformat = \"xml\"\n",
			wantErr: `invalid format "xml"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "config.toml", tt.content)

			_, err := LoadFrom(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_LocalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	writeConfig(t, tmpDir, "config.toml", "[ui]\ncolor = false\n")

	// Values may also come from the user's own config file; the local
	// file is loaded last so its keys always win.
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.UI.Color)
}
