// SPDX-License-Identifier: Apache-2.0

package models

// ItemResultStatus classifies the outcome of one collection's sync pass.
type ItemResultStatus int

const (
	// StatusFailsCount means the pass ran to completion; FailsCount holds
	// the number of item-level failures (0 = full success).
	StatusFailsCount ItemResultStatus = iota

	// StatusDBAccessError means the local store failed during enumeration.
	// Fatal: the rest of the run must not proceed.
	StatusDBAccessError

	// StatusSourceNotReady means the remote collection was unreachable or
	// not provisioned. Fatal: the rest of the run must not proceed.
	StatusSourceNotReady
)

// ItemResult accumulates the per-run outcome of a single collection's sync
// pass: a status classification plus a count of non-fatal item failures.
type ItemResult struct {
	status     ItemResultStatus
	failsCount int
}

// NewItemResult returns a result with the given status and zero failures.
func NewItemResult(status ItemResultStatus) *ItemResult {
	return &ItemResult{status: status}
}

// IncFailsCount records one more item-level failure.
func (r *ItemResult) IncFailsCount() { r.failsCount++ }

// FailsCount returns the number of item-level failures recorded so far.
func (r *ItemResult) FailsCount() int { return r.failsCount }

// IsDBAccessError reports whether the local store broke the pass.
func (r *ItemResult) IsDBAccessError() bool { return r.status == StatusDBAccessError }

// IsSourceNotReady reports whether the remote collection was unavailable.
func (r *ItemResult) IsSourceNotReady() bool { return r.status == StatusSourceNotReady }

// IsFatal reports whether the remaining collections of the run must be
// skipped. Item-level failures are never fatal.
func (r *ItemResult) IsFatal() bool {
	return r.status == StatusDBAccessError || r.status == StatusSourceNotReady
}

// IsSuccess reports a clean pass: no fatal condition and zero item failures.
func (r *ItemResult) IsSuccess() bool {
	return r.status == StatusFailsCount && r.failsCount == 0
}

// ResultKind is the vocabulary of the durable sync-result log. Every
// state-changing outcome of a pass is recorded under one of these kinds,
// keyed by the run's start timestamp and the item id.
type ResultKind string

const (
	ResultDownloaded ResultKind = "DOWNLOADED"
	ResultUploaded   ResultKind = "UPLOADED"
	ResultDeleted    ResultKind = "DELETED"
	ResultSynced     ResultKind = "SYNCED"
	ResultConflict   ResultKind = "CONFLICT"
	ResultRelated    ResultKind = "RELATED"
	ResultError      ResultKind = "ERROR"
)

// SyncStatus is the terminal status of a whole run, persisted by the
// orchestrator after the last collection completes.
type SyncStatus int

const (
	// SyncStatusUnknown means no run has completed yet.
	SyncStatusUnknown SyncStatus = iota

	// SyncStatusSynced means the run completed and every record is in sync.
	SyncStatusSynced

	// SyncStatusUnsynced means the run completed without errors but some
	// record was still left unsynced. An anomaly; logged when detected.
	SyncStatusUnsynced

	// SyncStatusError means a fatal error or at least one item failure.
	SyncStatusError

	// SyncStatusConflict means at least one record requires user resolution.
	SyncStatusConflict
)

func (s SyncStatus) String() string {
	switch s {
	case SyncStatusUnknown:
		return "UNKNOWN"
	case SyncStatusSynced:
		return "SYNCED"
	case SyncStatusUnsynced:
		return "UNSYNCED"
	case SyncStatusError:
		return "ERROR"
	case SyncStatusConflict:
		return "CONFLICT"
	default:
		return "UNKNOWN"
	}
}
