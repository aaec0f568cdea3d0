// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Cloud.BaseURL == "" || cfg.Cloud.Username == "" {
		return ErrInvalidCloudConfigs
	}

	if cfg.Cloud.Directory == "" || cfg.Cloud.RequestTimeout == 0 {
		return ErrInvalidCloudConfigs
	}

	if cfg.Sync.Interval == 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
