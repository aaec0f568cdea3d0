package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCloudConfigs indicates invalid cloud account settings
	// (for example, missing base URL or zero request timeout).
	ErrInvalidCloudConfigs = errors.New("invalid cloud configuration")
	// ErrInvalidSyncConfigs indicates invalid sync settings
	// (for example, zero daemon interval).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
