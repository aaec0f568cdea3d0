// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for laano-sync.
// It aggregates all sub-configurations and is populated by merging values
// from command-line overrides, environment variables, an optional JSON file,
// and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"LAANO_APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"LAANO_STORAGE_"`

	// Cloud holds the remote file-store account and endpoint settings.
	Cloud Cloud `envPrefix:"LAANO_CLOUD_"`

	// Sync holds the reconciliation policy knobs and the daemon interval.
	Sync Sync `envPrefix:"LAANO_SYNC_"`

	// Log holds log destination and rotation settings for the daemon.
	Log Log `envPrefix:"LAANO_LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged behind the values
	// already loaded from overrides and environment variables.
	// Populated via the LAANO_CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"LAANO_CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Reported by the version command and sent as the
	// User-Agent suffix on cloud requests.
	// Env: LAANO_APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the local store.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite Data Source Name used to open the database,
	// normally a file path (e.g. "/home/user/.laano/laano.db").
	// In-memory DSNs are rejected: sync state must survive restarts.
	// Env: LAANO_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Cloud holds the remote file-store endpoint and credentials.
type Cloud struct {
	// BaseURL is the root URL of the remote account
	// (e.g. "https://cloud.example.com/remote.php/dav/files/user").
	// Env: LAANO_CLOUD_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Username is the remote account login.
	// Env: LAANO_CLOUD_USERNAME
	Username string `env:"USERNAME"`

	// AppPassword is the application password (or token) used for basic
	// authentication against the remote account. Must be kept confidential.
	// Env: LAANO_CLOUD_APP_PASSWORD
	AppPassword string `env:"APP_PASSWORD"`

	// Directory is the remote application directory holding the three
	// collection directories, relative to BaseURL.
	// Env: LAANO_CLOUD_DIRECTORY
	Directory string `env:"DIRECTORY"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: LAANO_CLOUD_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the reconciliation policies and the background run interval.
type Sync struct {
	// UploadToEmpty controls what happens to synced local records when the
	// remote collection turns out to be empty: when true they are
	// re-uploaded, when false they are marked as delete conflicts so a
	// freshly wiped account does not silently erase local data.
	// Env: LAANO_SYNC_UPLOAD_TO_EMPTY
	UploadToEmpty bool `env:"UPLOAD_TO_EMPTY"`

	// ProtectLocal controls what happens to a synced local record whose
	// cloud object vanished: when true the record is parked as a conflict
	// for the user, when false it is deleted locally.
	// Env: LAANO_SYNC_PROTECT_LOCAL
	ProtectLocal bool `env:"PROTECT_LOCAL"`

	// Interval defines how often the daemon triggers a full run.
	// Env: LAANO_SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// Log holds logging destination and rotation settings.
type Log struct {
	// File is the log file path used by the daemon. Empty means stdout.
	// Env: LAANO_LOG_FILE
	File string `env:"FILE"`

	// MaxSizeMB is the size a log file may reach before rotation.
	// Env: LAANO_LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`

	// MaxBackups is the number of rotated files kept.
	// Env: LAANO_LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`
}

// defaults returns the built-in configuration merged in last, so every
// explicit source wins over it.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Cloud: Cloud{
			Directory:      "/.laano",
			RequestTimeout: 30 * time.Second,
		},
		Sync: Sync{
			UploadToEmpty: true,
			ProtectLocal:  true,
			Interval:      15 * time.Minute,
		},
		Log: Log{
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load assembles, merges, and validates the application configuration.
// The optional overrides config (normally built from command-line flags)
// takes the highest priority, followed by environment variables, the JSON
// file, and built-in defaults.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func Load(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
