package models

import (
	"errors"
	"fmt"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// resourceNames are the names used in ErrResourceNotFound, by table.
var resourceNames = map[string]string{
	"settings":         "setting",
	"expenses":         "expense",
	"transfer_records": "transfer",
}

// Connect opens the SQLite database at dsn, migrates the schema and
// registers the error callbacks. On success, DB is replaced.
func Connect(dsn string) error {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		Logger: &logger{Logger: log.Logger},
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// A single connection serializes all writes, SQLite would answer
	// concurrent writers with SQLITE_BUSY
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(Setting{}, Expense{}, TransferRecord{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := registerCallbacks(db); err != nil {
		return fmt.Errorf("failed to register callbacks: %w", err)
	}

	DB = db
	return nil
}

func registerCallbacks(db *gorm.DB) error {
	cb := db.Callback()

	return errors.Join(
		cb.Query().After("*").Register("weekbudget:not_found", notFoundCallback),
		cb.Query().After("*").Register("weekbudget:query_error", generalCallback),
		cb.Create().After("*").Register("weekbudget:create_error", generalCallback),
		cb.Update().After("*").Register("weekbudget:update_error", generalCallback),
		cb.Delete().After("*").Register("weekbudget:delete_error", generalCallback),
		cb.Raw().After("*").Register("weekbudget:raw_error", generalCallback),
	)
}

// notFoundCallback names the missing resource in the error.
func notFoundCallback(db *gorm.DB) {
	if !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		return
	}

	name, ok := resourceNames[db.Statement.Table]
	if !ok {
		name = db.Statement.Table
	}

	db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
}

// generalCallback replaces driver errors and errors of a closed database
// with ErrGeneral. The original error is only logged, it is of no use to
// the client.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var sqliteErr *go_sqlite.Error

	// database/sql does not export its error for closed databases
	if db.Error.Error() == "sql: database is closed" || errors.As(db.Error, &sqliteErr) {
		log.Error().Str("table", db.Statement.Table).Msgf("%T: %v", db.Error, db.Error)
		db.Error = ErrGeneral
	}
}
