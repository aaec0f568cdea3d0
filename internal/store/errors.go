package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrConstraint is returned when an INSERT violates the (id, duplicated)
	// uniqueness constraint of a collection table. The reconciler relies on
	// this value to distinguish a duplicate-id collision from generic I/O
	// failures and fall back to a duplicate save.
	ErrConstraint = errors.New("unique constraint violation")

	// ErrItemNotFound is returned when a query or update targets a record
	// that does not exist in the database.
	ErrItemNotFound = errors.New("item was not found")

	// ErrSettingNotFound is returned when a settings key has never been
	// written.
	ErrSettingNotFound = errors.New("setting was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// mapSQLiteError converts driver-level constraint failures into
// [ErrConstraint] so callers can match them with errors.Is. Any other error
// passes through unchanged.
func mapSQLiteError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return err
}
