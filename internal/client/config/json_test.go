package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("full file", func(t *testing.T) {
		os.Args = []string{"client", "-config", writeTempJSON(t, `{"server_url":"http://api:8000","request_timeout":"5s"}`)}
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)
		assert.Equal(t, "http://api:8000", cfg.ServerURL)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		os.Args = []string{"client", "-c", writeTempJSON(t, `{"server_url":"http://api:8000"}`)}
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)
		assert.Equal(t, "http://api:8000", cfg.ServerURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})

	t.Run("no flag", func(t *testing.T) {
		os.Args = []string{"client"}
		cfg := &Config{}
		parseJson(cfg)
		assert.Equal(t, Config{}, *cfg)
	})

	t.Run("invalid json panics", func(t *testing.T) {
		os.Args = []string{"client", "-c", writeTempJSON(t, `{`)}
		assert.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"client", "-c", filepath.Join(t.TempDir(), "nope.json")}
		assert.Panics(t, func() { parseJson(&Config{}) })
	})
}
