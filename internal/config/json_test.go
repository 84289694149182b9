package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server":    map[string]any{"http_address": "localhost:5000", "static_dir": "dist", "index_file": "index.html"},
		"backend":   map[string]any{"address": "http://jaeger:16686", "request_timeout": "500ms"},
		"cache":     map[string]any{"ttl": 1e9},
		"overrides": map[string]any{"full_override_path": "a.js", "patch_path": "b.json", "disable_watch": true},
		"log":       map[string]any{"pretty": true},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, "dist", cfg.Server.StaticDir)
	assert.Equal(t, "http://jaeger:16686", cfg.Backend.Address)
	assert.Equal(t, 500*time.Millisecond, cfg.Backend.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Cache.TTL, "numbers are nanoseconds")
	assert.Equal(t, "a.js", cfg.Overrides.FullOverridePath)
	assert.Equal(t, "b.json", cfg.Overrides.PatchPath)
	assert.True(t, cfg.Overrides.DisableWatch)
	assert.True(t, cfg.Log.Pretty)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{"cache": map[string]any{"ttl": "eventually"}})

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(1500 * time.Millisecond).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1.5s"`, string(b))
}
