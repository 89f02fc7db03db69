package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_OverlaysValues(t *testing.T) {
	path := writeTempConfig(t, `{
		"backend_base_url": "https://blog.example.com",
		"request_timeout_sec": 45,
		"credentials_path": "/tmp/creds.db"
	}`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"inkwell", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	parseJSON(&cfg)

	assert.Equal(t, "https://blog.example.com", cfg.BackendBaseURL)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/creds.db", cfg.CredentialsPath)
}

func TestParseJSON_PartialFileKeepsDefaults(t *testing.T) {
	path := writeTempConfig(t, `{"backend_base_url": "https://blog.example.com"}`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"inkwell", "-config", path}

	var cfg Config
	cfg.LoadDefaults()
	parseJSON(&cfg)

	assert.Equal(t, "https://blog.example.com", cfg.BackendBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "inkwell.db", cfg.CredentialsPath)
}

func TestParseJSON_NoFileIsNoop(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"inkwell"}

	var cfg Config
	cfg.LoadDefaults()
	parseJSON(&cfg)

	assert.Equal(t, "http://localhost:5000", cfg.BackendBaseURL)
}

func TestParseJSON_BrokenFilePanics(t *testing.T) {
	path := writeTempConfig(t, `{not json`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"inkwell", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJSON(&cfg) })
}
