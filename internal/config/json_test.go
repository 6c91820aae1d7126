package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

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

func Test_parseJSON_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"gateway_http_url":        "http://gw.example:9000",
		"gateway_ws_url":          "ws://gw.example:9000/ws",
		"request_timeout_seconds": 10,
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJSON(cfg)

		assert.Equal(t, "http://gw.example:9000", cfg.GatewayHTTPURL)
		assert.Equal(t, "ws://gw.example:9000/ws", cfg.GatewayWSURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})

	t.Run("partial file keeps existing values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"gateway_http_url": "http://other.example",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{
			GatewayHTTPURL: "http://defaults.example",
			GatewayWSURL:   "ws://defaults.example/ws",
			DatabasePath:   "keep.db",
			RequestTimeout: 42 * time.Second,
		}
		parseJSON(cfg)

		assert.Equal(t, "http://other.example", cfg.GatewayHTTPURL)
		assert.Equal(t, "ws://defaults.example/ws", cfg.GatewayWSURL)
		assert.Equal(t, "keep.db", cfg.DatabasePath)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			GatewayHTTPURL: "http://defaults.example",
			RequestTimeout: 42 * time.Second,
		}
		parseJSON(cfg)

		assert.Equal(t, "http://defaults.example", cfg.GatewayHTTPURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJSON(cfg) })
	})
}
