package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/finsync/internal/client/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()
	path := writeTempJSON(t, dir, "flag.json", map[string]any{
		"server_base_url":       "https://api.example",
		"online_check_interval": "10s",
		"request_timeout":       int64(2 * time.Second),
		"upload_backend":        "s3",
		"verbose":               true,
	})

	t.Run("loads from -config", func(t *testing.T) {
		cfg := &Config{DatabasePath: "keep.db"}
		require.NoError(t, parseJson(cfg, []string{"-config", path}))

		assert.Equal(t, "https://api.example", cfg.ServerBaseURL)
		assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, uploader.BackendS3, cfg.UploadBackend)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "keep.db", cfg.DatabasePath, "absent keys keep earlier values")
	})

	t.Run("loads from -c=", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, parseJson(cfg, []string{"-c=" + path}))
		assert.Equal(t, "https://api.example", cfg.ServerBaseURL)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		cfg := &Config{ServerBaseURL: "defaults", OnlineCheckInterval: 42 * time.Second}
		require.NoError(t, parseJson(cfg, nil))

		assert.Equal(t, "defaults", cfg.ServerBaseURL)
		assert.Equal(t, 42*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.ErrorContains(t, parseJson(&Config{}, []string{"-config", bad}), "parse config")
	})

	t.Run("missing file", func(t *testing.T) {
		require.Error(t, parseJson(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}))
	})
}
