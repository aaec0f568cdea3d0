// SPDX-License-Identifier: Apache-2.0

// Package cloud talks to the remote file store holding one JSON document per
// record under <app-directory>/<collection>/<id>.json. The reconciler drives
// every remote interaction of a sync run through [CollectionAdapter].
package cloud

import (
	"context"

	"github.com/bytesforge/laano-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cloud_mock.go -package=mock

// OutcomeCode classifies the result of a remote write.
type OutcomeCode int

const (
	// OutcomeOK means the write was applied.
	OutcomeOK OutcomeCode = iota

	// OutcomeSyncConflict means the remote object changed between the local
	// read and this write (precondition failed). Not an error: the
	// reconciler turns it into a conflict state.
	OutcomeSyncConflict

	// OutcomeFailed means the write failed for any other reason.
	OutcomeFailed
)

// Outcome is the result of an Upload or Delete call. ETag carries the new
// object version after a successful upload.
type Outcome struct {
	Code OutcomeCode
	ETag string
}

// IsOK reports whether the write was applied.
func (o Outcome) IsOK() bool { return o.Code == OutcomeOK }

// IsSyncConflict reports whether the write lost a race against another
// client.
func (o Outcome) IsSyncConflict() bool { return o.Code == OutcomeSyncConflict }

// CollectionAdapter is the remote boundary of one collection.
type CollectionAdapter[T models.Item] interface {
	// CollectionETag returns the aggregate ETag of the collection
	// directory. Failure means the source is not ready and the run must
	// not touch local state.
	CollectionETag(ctx context.Context) (string, error)

	// IsChanged compares the given aggregate ETag against the last one
	// persisted after a fully successful run.
	IsChanged(ctx context.Context, eTag string) (bool, error)

	// IDETagMap returns the full remote listing as id → object ETag.
	IDETagMap(ctx context.Context) (map[string]string, error)

	// Download fetches one record. Returns [ErrNotFound] when the object
	// is missing. The returned item carries a SYNCED state with the
	// object's ETag.
	Download(ctx context.Context, id string) (T, error)

	// Upload writes one record. A lost race is reported via the outcome,
	// not the error.
	Upload(ctx context.Context, item T) (Outcome, error)

	// Delete removes one record. A missing object counts as success.
	Delete(ctx context.Context, id string) (Outcome, error)

	// UpdateLastSyncedETag persists the aggregate ETag after a fully
	// successful run.
	UpdateLastSyncedETag(ctx context.Context, eTag string) error
}
