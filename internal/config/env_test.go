// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"LAANO_CONFIG": "/path/to/config.json",

		"LAANO_APP_VERSION": "1.2.3",

		"LAANO_STORAGE_DB_DSN": "/home/user/.laano/laano.db",

		"LAANO_CLOUD_BASE_URL":        "https://cloud.example.com/remote.php/dav/files/user",
		"LAANO_CLOUD_USERNAME":        "user",
		"LAANO_CLOUD_APP_PASSWORD":    "app-pass",
		"LAANO_CLOUD_DIRECTORY":       "/.laano",
		"LAANO_CLOUD_REQUEST_TIMEOUT": "30s",

		"LAANO_SYNC_UPLOAD_TO_EMPTY": "true",
		"LAANO_SYNC_PROTECT_LOCAL":   "true",
		"LAANO_SYNC_INTERVAL":        "15m",

		"LAANO_LOG_FILE":        "/var/log/laanosync.log",
		"LAANO_LOG_MAX_SIZE_MB": "20",
		"LAANO_LOG_MAX_BACKUPS": "5",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "/home/user/.laano/laano.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "https://cloud.example.com/remote.php/dav/files/user", cfg.Cloud.BaseURL)
	assert.Equal(t, "user", cfg.Cloud.Username)
	assert.Equal(t, "app-pass", cfg.Cloud.AppPassword)
	assert.Equal(t, "/.laano", cfg.Cloud.Directory)
	assert.Equal(t, 30*time.Second, cfg.Cloud.RequestTimeout)

	assert.True(t, cfg.Sync.UploadToEmpty)
	assert.True(t, cfg.Sync.ProtectLocal)
	assert.Equal(t, 15*time.Minute, cfg.Sync.Interval)

	assert.Equal(t, "/var/log/laanosync.log", cfg.Log.File)
	assert.Equal(t, 20, cfg.Log.MaxSizeMB)
	assert.Equal(t, 5, cfg.Log.MaxBackups)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"LAANO_STORAGE_DB_DSN": "/tmp/laano.db",
		"LAANO_CLOUD_USERNAME": "user",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/tmp/laano.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "user", cfg.Cloud.Username)

	// everything else stays at its zero value
	assert.Empty(t, cfg.Cloud.BaseURL)
	assert.Empty(t, cfg.App.Version)
	assert.Zero(t, cfg.Cloud.RequestTimeout)
	assert.False(t, cfg.Sync.UploadToEmpty)
	assert.Zero(t, cfg.Sync.Interval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"LAANO_CLOUD_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	assert.Error(t, err)
}

// setEnvVars sets the given environment variables for the duration of the
// test and relies on t.Setenv for cleanup.
func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for k, v := range envVars {
		t.Setenv(k, v)
	}
}
