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
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"version": "2.0.0"},
		"storage": {"db": {"dsn": "/data/laano.db"}},
		"cloud": {
			"base_url": "https://cloud.example.com/dav",
			"username": "alice",
			"app_password": "secret",
			"directory": "/.laano",
			"request_timeout": "45s"
		},
		"sync": {
			"upload_to_empty": true,
			"protect_local": true,
			"interval": "10m"
		},
		"log": {"file": "/var/log/laano.log", "max_size_mb": 5, "max_backups": 2}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "/data/laano.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://cloud.example.com/dav", cfg.Cloud.BaseURL)
	assert.Equal(t, "alice", cfg.Cloud.Username)
	assert.Equal(t, "secret", cfg.Cloud.AppPassword)
	assert.Equal(t, "/.laano", cfg.Cloud.Directory)
	assert.Equal(t, 45*time.Second, cfg.Cloud.RequestTimeout)
	assert.True(t, cfg.Sync.UploadToEmpty)
	assert.True(t, cfg.Sync.ProtectLocal)
	assert.Equal(t, 10*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, "/var/log/laano.log", cfg.Log.File)
	assert.Equal(t, 5, cfg.Log.MaxSizeMB)
	assert.Equal(t, 2, cfg.Log.MaxBackups)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// durations may also be given in nanoseconds
	path := writeTempJSON(t, `{"cloud": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Cloud.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"cloud": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseJSON_InvalidDurationString(t *testing.T) {
	path := writeTempJSON(t, `{"sync": {"interval": "soon"}}`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := d.MarshalJSON()
	require.NoError(t, err)

	assert.JSONEq(t, `"1m30s"`, string(data))
}
