// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"

	"github.com/bytesforge/laano-sync/models"
)

// RowScanner is the subset of *sql.Row / *sql.Rows needed by the mappers.
type RowScanner interface {
	Scan(dest ...any) error
}

// ItemMapper binds a concrete record type to its collection table: the
// content column list, the value extraction for inserts, and the full-row
// scan. Sync-state columns are shared and handled by the repository itself.
type ItemMapper[T models.Item] struct {
	// Table is the collection table name.
	Table string

	// ContentColumns are the natural columns of the record, id first.
	ContentColumns []string

	// ContentValues extracts the insert values aligned with ContentColumns.
	ContentValues func(item T) []any

	// Scan reads one full row: rowid, content columns, sync-state columns.
	Scan func(row RowScanner) (T, error)
}

// syncColumns are the shared sync-state columns appended to every
// collection table, aligned with [models.StateColumns].
var syncColumns = []string{"etag", "duplicated", "conflicted", "deleted", "synced"}

// selectColumns returns the full projection used by All/Unsynced queries.
func (m ItemMapper[T]) selectColumns() []string {
	cols := make([]string, 0, 1+len(m.ContentColumns)+len(syncColumns))
	cols = append(cols, "rowid")
	cols = append(cols, m.ContentColumns...)
	cols = append(cols, syncColumns...)
	return cols
}

// insertColumns returns the column list used by Save/SaveDuplicated.
func (m ItemMapper[T]) insertColumns() []string {
	cols := make([]string, 0, len(m.ContentColumns)+len(syncColumns))
	cols = append(cols, m.ContentColumns...)
	cols = append(cols, syncColumns...)
	return cols
}

// insertValues appends the sync-state column values to the content values.
func (m ItemMapper[T]) insertValues(item T, state models.SyncState) []any {
	cols := state.Columns()
	values := m.ContentValues(item)
	return append(values, cols.ETag, cols.Duplicated, cols.Conflicted, cols.Deleted, cols.Synced)
}

// Tags are persisted as a single comma-joined column. None of the three
// collections allows commas inside a tag.

func encodeTags(tags []string) string {
	return strings.Join(tags, ",")
}

func decodeTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// LinkMapper binds [models.Link] to the links table.
func LinkMapper() ItemMapper[models.Link] {
	return ItemMapper[models.Link]{
		Table:          "links",
		ContentColumns: []string{"id", "created", "updated", "link", "name", "disabled", "tags"},
		ContentValues: func(l models.Link) []any {
			return []any{l.ID, l.Created, l.Updated, l.URL, l.Name, l.Disabled, encodeTags(l.Tags)}
		},
		Scan: func(row RowScanner) (models.Link, error) {
			var (
				l     models.Link
				rowID int64
				tags  string
				cols  models.StateColumns
			)
			err := row.Scan(
				&rowID,
				&l.ID, &l.Created, &l.Updated, &l.URL, &l.Name, &l.Disabled, &tags,
				&cols.ETag, &cols.Duplicated, &cols.Conflicted, &cols.Deleted, &cols.Synced,
			)
			if err != nil {
				return models.Link{}, err
			}
			l.Tags = decodeTags(tags)
			l.State = models.SyncStateFromColumns(rowID, cols)
			return l, nil
		},
	}
}

// FavoriteMapper binds [models.Favorite] to the favorites table.
func FavoriteMapper() ItemMapper[models.Favorite] {
	return ItemMapper[models.Favorite]{
		Table:          "favorites",
		ContentColumns: []string{"id", "created", "updated", "name", "and_gate", "tags"},
		ContentValues: func(f models.Favorite) []any {
			return []any{f.ID, f.Created, f.Updated, f.Name, f.AndGate, encodeTags(f.Tags)}
		},
		Scan: func(row RowScanner) (models.Favorite, error) {
			var (
				f     models.Favorite
				rowID int64
				tags  string
				cols  models.StateColumns
			)
			err := row.Scan(
				&rowID,
				&f.ID, &f.Created, &f.Updated, &f.Name, &f.AndGate, &tags,
				&cols.ETag, &cols.Duplicated, &cols.Conflicted, &cols.Deleted, &cols.Synced,
			)
			if err != nil {
				return models.Favorite{}, err
			}
			f.Tags = decodeTags(tags)
			f.State = models.SyncStateFromColumns(rowID, cols)
			return f, nil
		},
	}
}

// NoteMapper binds [models.Note] to the notes table.
func NoteMapper() ItemMapper[models.Note] {
	return ItemMapper[models.Note]{
		Table:          "notes",
		ContentColumns: []string{"id", "created", "updated", "note", "link_id", "tags"},
		ContentValues: func(n models.Note) []any {
			return []any{n.ID, n.Created, n.Updated, n.Note, n.LinkID, encodeTags(n.Tags)}
		},
		Scan: func(row RowScanner) (models.Note, error) {
			var (
				n     models.Note
				rowID int64
				tags  string
				cols  models.StateColumns
			)
			err := row.Scan(
				&rowID,
				&n.ID, &n.Created, &n.Updated, &n.Note, &n.LinkID, &tags,
				&cols.ETag, &cols.Duplicated, &cols.Conflicted, &cols.Deleted, &cols.Synced,
			)
			if err != nil {
				return models.Note{}, err
			}
			n.Tags = decodeTags(tags)
			n.State = models.SyncStateFromColumns(rowID, cols)
			return n, nil
		},
	}
}
