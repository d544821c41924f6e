package store

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/migrations"
)

// DB wraps the raw database handle together with the squirrel statement
// builder configured for the active driver's placeholder format ($1 for
// PostgreSQL, ? for SQLite). Repositories build every query through Builder
// so the same code runs against both backends.
type DB struct {
	*sql.DB

	// Builder is the driver-aware squirrel statement builder.
	Builder squirrel.StatementBuilderType

	// dialect is the goose dialect name of the active driver.
	dialect string

	logger *logger.Logger
}

// Migrate applies all pending schema migrations embedded in the migrations
// package against this database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
