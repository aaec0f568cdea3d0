package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/bytesforge/laano-sync/internal/logger"
	"github.com/bytesforge/laano-sync/models"
)

// syncResultRepository implements [SyncResultRepository] over the
// sync_results table.
type syncResultRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSyncResultRepository(db *DB, logger *logger.Logger) SyncResultRepository {
	return &syncResultRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *syncResultRepository) Log(ctx context.Context, started int64, entryID string, kind models.ResultKind) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("sync_results").
		Columns("created", "started_at", "entry_id", "result").
		Values(r.now().UnixMilli(), started, entryID, string(kind)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).Str("func", "syncResultRepository.Log").
			Str("entry_id", entryID).Str("result", string(kind)).
			Msg("failed to insert sync result entry")
		return fmt.Errorf("failed to log sync result (entry_id=%s): %w", entryID, execErr)
	}

	return nil
}

func (r *syncResultRepository) Cleanup(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	// entries of finished runs have been consumed by the UI layer; a new run
	// starts with an empty log
	query, args, err := sq.Delete("sync_results").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).Str("func", "syncResultRepository.Cleanup").
			Msg("failed to clean up sync result entries")
		return 0, fmt.Errorf("failed to clean up sync results: %w", execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}
