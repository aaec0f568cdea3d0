package store

import (
	"database/sql"

	"github.com/bytesforge/laano-sync/internal/logger"
	"github.com/bytesforge/laano-sync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
