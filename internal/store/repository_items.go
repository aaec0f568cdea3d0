// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/bytesforge/laano-sync/internal/logger"
	"github.com/bytesforge/laano-sync/models"
)

// itemRepository is the SQLite-backed implementation of [LocalItemStore].
// One instance serves one collection table, described by its [ItemMapper].
type itemRepository[T models.Item] struct {
	*DB
	mapper  ItemMapper[T]
	results SyncResultRepository
	logger  *logger.Logger
}

// NewItemRepository wires a collection repository over an open database.
// Sync-result log entries are delegated to the shared results repository.
func NewItemRepository[T models.Item](db *DB, mapper ItemMapper[T], results SyncResultRepository, logger *logger.Logger) LocalItemStore[T] {
	return &itemRepository[T]{
		DB:      db,
		mapper:  mapper,
		results: results,
		logger:  logger,
	}
}

func (r *itemRepository[T]) All(ctx context.Context) ([]T, error) {
	return r.selectItems(ctx, sq.Select(r.mapper.selectColumns()...).
		From(r.mapper.Table).
		OrderBy("rowid"))
}

func (r *itemRepository[T]) Unsynced(ctx context.Context) ([]T, error) {
	return r.selectItems(ctx, sq.Select(r.mapper.selectColumns()...).
		From(r.mapper.Table).
		Where(sq.Eq{"synced": false, "conflicted": false}).
		OrderBy("rowid"))
}

func (r *itemRepository[T]) selectItems(ctx context.Context, builder sq.SelectBuilder) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "itemRepository.selectItems").Str("table", r.mapper.Table).
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.selectItems").Str("table", r.mapper.Table).
			Msg("failed to execute select query")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, scanErr := r.mapper.Scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "itemRepository.selectItems").Str("table", r.mapper.Table).
				Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "itemRepository.selectItems").Str("table", r.mapper.Table).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *itemRepository[T]) IDs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("DISTINCT id").From(r.mapper.Table).OrderBy("rowid").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.IDs").Str("table", r.mapper.Table).
			Msg("failed to execute select query")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, scanErr)
		}
		ids = append(ids, id)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, rowsErr)
	}

	return ids, nil
}

func (r *itemRepository[T]) Save(ctx context.Context, item T) (bool, error) {
	return r.insert(ctx, item, item.SyncState())
}

func (r *itemRepository[T]) SaveDuplicated(ctx context.Context, item T) (bool, error) {
	log := logger.FromContext(ctx)

	ordinal, err := r.nextDuplicatedOrdinal(ctx, item.ItemID())
	if err != nil {
		return false, err
	}

	state, err := models.NewDuplicatedSyncState(item.SyncState().ETag(), ordinal)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.SaveDuplicated").Str("table", r.mapper.Table).
			Str("id", item.ItemID()).
			Msg("downloaded record cannot form a duplicate state")
		return false, err
	}

	return r.insert(ctx, item, state)
}

func (r *itemRepository[T]) nextDuplicatedOrdinal(ctx context.Context, id string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("COALESCE(MAX(duplicated), 0) + 1").
		From(r.mapper.Table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var ordinal int
	if scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(&ordinal); scanErr != nil {
		log.Err(scanErr).Str("func", "itemRepository.nextDuplicatedOrdinal").Str("table", r.mapper.Table).
			Str("id", id).
			Msg("failed to resolve next duplicated ordinal")
		return 0, fmt.Errorf("%w: %v", ErrScanningRow, scanErr)
	}

	return ordinal, nil
}

func (r *itemRepository[T]) insert(ctx context.Context, item T, state models.SyncState) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(r.mapper.Table).
		Columns(r.mapper.insertColumns()...).
		Values(r.mapper.insertValues(item, state)...).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
		execErr = mapSQLiteError(execErr)
		log.Err(execErr).Str("func", "itemRepository.insert").Str("table", r.mapper.Table).
			Str("id", item.ItemID()).
			Msg("failed to insert record")
		return false, fmt.Errorf("failed to save record (id=%s): %w", item.ItemID(), execErr)
	}

	return true, nil
}

func (r *itemRepository[T]) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(r.mapper.Table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).Str("func", "itemRepository.Delete").Str("table", r.mapper.Table).
			Str("id", id).
			Msg("failed to delete record")
		return false, fmt.Errorf("failed to delete record (id=%s): %w", id, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	return affected > 0, nil
}

func (r *itemRepository[T]) Update(ctx context.Context, id string, state models.SyncState) (bool, error) {
	log := logger.FromContext(ctx)

	cols := state.Columns()
	builder := sq.Update(r.mapper.Table).
		Set("etag", cols.ETag).
		Set("duplicated", cols.Duplicated).
		Set("conflicted", cols.Conflicted).
		Set("deleted", cols.Deleted).
		Set("synced", cols.Synced)

	// a state loaded from storage addresses its exact row, which matters for
	// duplicates sharing the same id
	if state.RowID() >= 0 {
		builder = builder.Where(sq.Eq{"rowid": state.RowID()})
	} else {
		builder = builder.Where(sq.Eq{"id": id, "duplicated": 0})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).Str("func", "itemRepository.Update").Str("table", r.mapper.Table).
			Str("id", id).
			Msg("failed to update sync state")
		return false, fmt.Errorf("failed to update sync state (id=%s): %w", id, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	if affected == 0 {
		log.Warn().Str("func", "itemRepository.Update").Str("table", r.mapper.Table).
			Str("id", id).
			Msg("no rows affected during sync state update: record not found")
		return false, nil
	}

	return true, nil
}

func (r *itemRepository[T]) ResetSyncState(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(r.mapper.Table).
		Set("etag", nil).
		Set("synced", false).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).Str("func", "itemRepository.ResetSyncState").Str("table", r.mapper.Table).
			Msg("failed to reset sync state")
		return 0, fmt.Errorf("failed to reset sync state: %w", execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}

func (r *itemRepository[T]) LogSyncResult(ctx context.Context, started int64, id string, kind models.ResultKind) error {
	return r.results.Log(ctx, started, id, kind)
}

func (r *itemRepository[T]) IsConflicted(ctx context.Context) (bool, error) {
	return r.exists(ctx, sq.Eq{"conflicted": true})
}

func (r *itemRepository[T]) IsUnsynced(ctx context.Context) (bool, error) {
	return r.exists(ctx, sq.Eq{"synced": false, "conflicted": false})
}

func (r *itemRepository[T]) exists(ctx context.Context, where sq.Eq) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("COUNT(1)").From(r.mapper.Table).Where(where).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var count int64
	if scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(&count); scanErr != nil {
		log.Err(scanErr).Str("func", "itemRepository.exists").Str("table", r.mapper.Table).
			Msg("failed to execute count query")
		return false, fmt.Errorf("%w: %v", ErrExecutingQuery, scanErr)
	}

	return count > 0, nil
}
