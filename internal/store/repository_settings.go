package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/bytesforge/laano-sync/internal/logger"
	"github.com/bytesforge/laano-sync/models"
)

// Settings keys. Per-collection keys are suffixed with the collection name.
const (
	settingLastSyncedETag = "last_synced_etag."
	settingLastSyncTime   = "last_sync_time."
	settingSyncStatus     = "sync_status"
)

// settingsRepository implements [SettingsRepository] over the settings
// key/value table.
type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *settingsRepository) LastSyncedETag(ctx context.Context, collection string) (string, error) {
	value, err := r.get(ctx, settingLastSyncedETag+collection)
	if errors.Is(err, ErrSettingNotFound) {
		// never synced yet
		return "", nil
	}
	return value, err
}

func (r *settingsRepository) SetLastSyncedETag(ctx context.Context, collection, eTag string) error {
	return r.set(ctx, settingLastSyncedETag+collection, eTag)
}

func (r *settingsRepository) SyncStatus(ctx context.Context) (models.SyncStatus, error) {
	value, err := r.get(ctx, settingSyncStatus)
	if errors.Is(err, ErrSettingNotFound) {
		return models.SyncStatusUnknown, nil
	}
	if err != nil {
		return models.SyncStatusUnknown, err
	}

	status, convErr := strconv.Atoi(value)
	if convErr != nil {
		return models.SyncStatusUnknown, fmt.Errorf("malformed sync status value %q: %w", value, convErr)
	}

	return models.SyncStatus(status), nil
}

func (r *settingsRepository) SetSyncStatus(ctx context.Context, status models.SyncStatus) error {
	return r.set(ctx, settingSyncStatus, strconv.Itoa(int(status)))
}

func (r *settingsRepository) LastSyncTime(ctx context.Context, collection string) (int64, error) {
	value, err := r.get(ctx, settingLastSyncTime+collection)
	if errors.Is(err, ErrSettingNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	at, convErr := strconv.ParseInt(value, 10, 64)
	if convErr != nil {
		return 0, fmt.Errorf("malformed last sync time value %q: %w", value, convErr)
	}

	return at, nil
}

func (r *settingsRepository) UpdateLastSyncTime(ctx context.Context, collection string, at int64) error {
	return r.set(ctx, settingLastSyncTime+collection, strconv.FormatInt(at, 10))
}

func (r *settingsRepository) get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").From("settings").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrSettingNotFound, key)
	}
	if scanErr != nil {
		log.Err(scanErr).Str("func", "settingsRepository.get").Str("key", key).
			Msg("failed to read setting")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, scanErr)
	}

	return value, nil
}

func (r *settingsRepository) set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).Str("func", "settingsRepository.set").Str("key", key).
			Msg("failed to write setting")
		return fmt.Errorf("failed to write setting %q: %w", key, execErr)
	}

	return nil
}
