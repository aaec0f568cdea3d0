package store

import (
	"context"
	"fmt"

	"github.com/bytesforge/laano-sync/internal/config"
	"github.com/bytesforge/laano-sync/internal/logger"
	"github.com/bytesforge/laano-sync/models"
)

// Collection names shared by the settings keys, notification actions, and
// the cloud directory layout.
const (
	CollectionLinks     = "links"
	CollectionFavorites = "favorites"
	CollectionNotes     = "notes"
)

// Storages groups all local repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	// Links, Favorites, Notes are the per-collection item repositories.
	Links     LocalItemStore[models.Link]
	Favorites LocalItemStore[models.Favorite]
	Notes     LocalItemStore[models.Note]

	// SyncResults is the shared append-only result log.
	SyncResults SyncResultRepository

	// Settings holds the sync bookkeeping (ETags, status, timestamps).
	Settings SettingsRepository

	db *DB
}

// Close releases the underlying database handle. Safe on a Storages value
// assembled by hand in tests, where no handle exists.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	results := NewSyncResultRepository(db, logger)

	return &Storages{
		Links:       NewItemRepository(db, LinkMapper(), results, logger),
		Favorites:   NewItemRepository(db, FavoriteMapper(), results, logger),
		Notes:       NewItemRepository(db, NoteMapper(), results, logger),
		SyncResults: results,
		Settings:    NewSettingsRepository(db, logger),
		db:          db,
	}, nil
}
