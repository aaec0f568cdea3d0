package cloud

import "errors"

// Sentinel errors returned by the remote adapter. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when the requested object does not exist on
	// the remote store.
	ErrNotFound = errors.New("remote object not found")

	// ErrUnauthorized is returned when the account credentials are rejected.
	ErrUnauthorized = errors.New("cloud unauthorized")

	// ErrPreconditionFailed is returned when an If-Match / If-None-Match
	// precondition was not met. Writes translate it into
	// [OutcomeSyncConflict] instead of surfacing it.
	ErrPreconditionFailed = errors.New("remote precondition failed")

	// ErrSourceNotReady is returned when the collection directory cannot be
	// reached or reports no ETag.
	ErrSourceNotReady = errors.New("cloud source is not ready")

	// ErrServerError is returned for remote 5xx responses.
	ErrServerError = errors.New("cloud server error")
)
