// SPDX-License-Identifier: Apache-2.0

package models

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrInvalidSyncState is returned when a sync state constructor is called
// with arguments that cannot describe a valid state (e.g. a duplicate
// conflict without an eTag).
var ErrInvalidSyncState = errors.New("invalid sync state")

// State is the target of a sync-state transition. The reconciler moves a
// record between these states after every remote interaction.
type State int

const (
	// StateUnsynced marks a record with local changes not yet pushed to the
	// cloud. Newly created records start here with no eTag.
	StateUnsynced State = iota

	// StateSynced marks a record whose local copy matches the cloud object
	// identified by its eTag.
	StateSynced

	// StateDeleted marks a soft-deleted record awaiting remote deletion.
	StateDeleted

	// StateConflictedUpdate marks a record whose local edit diverged from
	// the cloud copy (modified or vanished remotely).
	StateConflictedUpdate

	// StateConflictedDelete marks a locally deleted record whose cloud copy
	// was modified in the meantime.
	StateConflictedDelete
)

func (s State) String() string {
	switch s {
	case StateUnsynced:
		return "UNSYNCED"
	case StateSynced:
		return "SYNCED"
	case StateDeleted:
		return "DELETED"
	case StateConflictedUpdate:
		return "CONFLICTED_UPDATE"
	case StateConflictedDelete:
		return "CONFLICTED_DELETE"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// SyncState is an immutable value describing the synchronization status of a
// single record: its storage row id, the eTag of the cloud object it was last
// synced against, a duplicate-conflict ordinal, and the conflicted / deleted /
// synced flags. All mutation happens through constructors; a SyncState never
// changes after construction.
type SyncState struct {
	rowID      int64
	eTag       string // "" means the record has never been synced
	duplicated int
	conflicted bool
	deleted    bool
	synced     bool
}

// StateColumns is the persisted column representation of a SyncState.
// The row id is deliberately absent: it is a storage-assigned key, not state
// data, and must never travel with the value payload.
type StateColumns struct {
	ETag       sql.NullString
	Duplicated int
	Conflicted bool
	Deleted    bool
	Synced     bool
}

// NewSyncState returns the default "never synced" state: no eTag, no row,
// unsynced.
func NewSyncState() SyncState {
	return SyncState{rowID: -1}
}

// NewSyncStateFrom applies the state machine transition from prior to target.
// Row id, eTag and the duplicated ordinal are preserved; only the conflicted,
// deleted and synced flags change according to the target:
//
//	UNSYNCED           → keep conflicted/deleted, drop synced
//	SYNCED             → keep conflicted, drop deleted, set synced
//	DELETED            → keep conflicted, set deleted, drop synced
//	CONFLICTED_UPDATE  → conflicted, live, unsynced
//	CONFLICTED_DELETE  → conflicted, deleted, unsynced
func NewSyncStateFrom(prior SyncState, target State) SyncState {
	next := SyncState{
		rowID:      prior.rowID,
		eTag:       prior.eTag,
		duplicated: prior.duplicated,
	}
	switch target {
	case StateUnsynced:
		next.conflicted = prior.conflicted
		next.deleted = prior.deleted
		next.synced = false
	case StateSynced:
		next.conflicted = prior.conflicted
		next.deleted = false
		next.synced = true
	case StateDeleted:
		next.conflicted = prior.conflicted
		next.deleted = true
		next.synced = false
	case StateConflictedUpdate:
		next.conflicted = true
		next.deleted = false
		next.synced = false
	case StateConflictedDelete:
		next.conflicted = true
		next.deleted = true
		next.synced = false
	default:
		panic(fmt.Sprintf("unexpected target state [%v]", target))
	}
	return next
}

// NewSyncStateOf is NewSyncStateFrom applied to the default state.
func NewSyncStateOf(target State) SyncState {
	return NewSyncStateFrom(NewSyncState(), target)
}

// NewSyncStateWithETag applies the transition to the default state and
// overrides the eTag, e.g. SYNCED with the eTag just returned by an upload.
func NewSyncStateWithETag(eTag string, target State) SyncState {
	next := NewSyncStateOf(target)
	next.eTag = eTag
	return next
}

// NewSyncStateFromWithETag applies the transition from prior to target and
// replaces the eTag, e.g. SYNCED with the new version an upload just returned.
func NewSyncStateFromWithETag(prior SyncState, eTag string, target State) SyncState {
	next := NewSyncStateFrom(prior, target)
	next.eTag = eTag
	return next
}

// NewDuplicatedSyncState builds the state of a duplicate-conflict record: a
// downloaded record persisted under an id that already exists locally. The
// record is synced (it mirrors a real cloud object) and conflicted (the user
// must resolve the duplication). Fails with ErrInvalidSyncState unless a
// non-empty eTag and a positive ordinal are supplied.
func NewDuplicatedSyncState(eTag string, duplicated int) (SyncState, error) {
	if eTag == "" {
		return SyncState{}, fmt.Errorf("%w: duplicate conflict requires an eTag", ErrInvalidSyncState)
	}
	if duplicated <= 0 {
		return SyncState{}, fmt.Errorf("%w: duplicate conflict cannot target the primary record", ErrInvalidSyncState)
	}
	return SyncState{
		rowID:      -1,
		eTag:       eTag,
		duplicated: duplicated,
		conflicted: true,
		deleted:    false,
		synced:     true,
	}, nil
}

// SyncStateFromColumns reconstructs a SyncState from its persisted columns
// and the storage-assigned row id.
func SyncStateFromColumns(rowID int64, cols StateColumns) SyncState {
	return SyncState{
		rowID:      rowID,
		eTag:       cols.ETag.String,
		duplicated: cols.Duplicated,
		conflicted: cols.Conflicted,
		deleted:    cols.Deleted,
		synced:     cols.Synced,
	}
}

// Columns returns the persisted representation of the state. The row id is
// excluded; see StateColumns.
func (s SyncState) Columns() StateColumns {
	return StateColumns{
		ETag:       sql.NullString{String: s.eTag, Valid: s.eTag != ""},
		Duplicated: s.duplicated,
		Conflicted: s.conflicted,
		Deleted:    s.deleted,
		Synced:     s.synced,
	}
}

// RowID returns the local storage row id, or -1 if the record has not been
// persisted yet.
func (s SyncState) RowID() int64 { return s.rowID }

// ETag returns the cloud object version marker, or "" if never synced.
func (s SyncState) ETag() string { return s.eTag }

// Duplicated returns the duplicate-conflict ordinal; 0 for a primary record.
func (s SyncState) Duplicated() int { return s.duplicated }

// IsDuplicated reports whether the record is a non-primary duplicate.
func (s SyncState) IsDuplicated() bool { return s.duplicated != 0 }

func (s SyncState) IsConflicted() bool { return s.conflicted }

func (s SyncState) IsDeleted() bool { return s.deleted }

func (s SyncState) IsSynced() bool { return s.synced }

// IsUnsynced reports whether the record has pending local changes that the
// reconciler may act on. Conflicted records are excluded: they are parked
// until the user resolves them.
func (s SyncState) IsUnsynced() bool { return !s.synced && !s.conflicted }

// Equal compares every field, including the row id.
func (s SyncState) Equal(o SyncState) bool { return s == o }

func (s SyncState) String() string {
	return fmt.Sprintf("SyncState{rowID=%d, eTag=%q, duplicated=%d, conflicted=%t, deleted=%t, synced=%t}",
		s.rowID, s.eTag, s.duplicated, s.conflicted, s.deleted, s.synced)
}
