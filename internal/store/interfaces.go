// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/bytesforge/laano-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalItemStore is the low-level local repository of one collection.
// The reconciler drives every local mutation of a sync run through it.
type LocalItemStore[T models.Item] interface {
	// All returns every record of the collection, duplicates included.
	All(ctx context.Context) ([]T, error)

	// Unsynced returns the records with pending local changes
	// (not synced and not conflicted).
	Unsynced(ctx context.Context) ([]T, error)

	// IDs returns the distinct record ids of the collection.
	IDs(ctx context.Context) ([]string, error)

	// Save inserts a new record. A duplicate-id collision is reported as
	// [ErrConstraint] so the caller can fall back to SaveDuplicated.
	Save(ctx context.Context, item T) (bool, error)

	// SaveDuplicated inserts the record under its existing id with the next
	// free duplicated ordinal and a duplicate-conflict sync state.
	SaveDuplicated(ctx context.Context, item T) (bool, error)

	// Delete removes the record (and its duplicates) from local storage.
	Delete(ctx context.Context, id string) (bool, error)

	// Update replaces only the sync-state columns of a record.
	Update(ctx context.Context, id string, state models.SyncState) (bool, error)

	// ResetSyncState clears etag and synced flags of every record, forcing
	// the next run to re-upload the whole collection.
	ResetSyncState(ctx context.Context) (int64, error)

	// LogSyncResult appends an entry to the durable sync-result log, keyed
	// by the run's start timestamp.
	LogSyncResult(ctx context.Context, started int64, id string, kind models.ResultKind) error

	// IsConflicted reports whether any record awaits conflict resolution.
	IsConflicted(ctx context.Context) (bool, error)

	// IsUnsynced reports whether any record still has pending local changes.
	IsUnsynced(ctx context.Context) (bool, error)
}

// SyncResultRepository manages the append-only sync-result log shared by all
// collections.
type SyncResultRepository interface {
	// Log appends one entry for the run started at the given UnixMilli
	// timestamp.
	Log(ctx context.Context, started int64, entryID string, kind models.ResultKind) error

	// Cleanup drops the entries of previous, already consumed runs and
	// returns the number of removed rows.
	Cleanup(ctx context.Context) (int64, error)
}

// SettingsRepository persists sync bookkeeping in the settings key/value
// table: last-synced collection ETags, the overall status of the last run,
// and per-collection last sync times.
type SettingsRepository interface {
	LastSyncedETag(ctx context.Context, collection string) (string, error)
	SetLastSyncedETag(ctx context.Context, collection, eTag string) error

	SyncStatus(ctx context.Context) (models.SyncStatus, error)
	SetSyncStatus(ctx context.Context, status models.SyncStatus) error

	LastSyncTime(ctx context.Context, collection string) (int64, error)
	UpdateLastSyncTime(ctx context.Context, collection string, at int64) error
}
