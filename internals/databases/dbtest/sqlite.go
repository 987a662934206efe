// Package dbtest opens throwaway SQLite databases for package tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authModel "wedding_backend/internals/features/users/auth/model"
	weddingModel "wedding_backend/internals/features/weddings/weddings/model"
)

// Open returns an in-memory database with every table migrated. The pool is
// pinned to one connection, so a leaked transaction blocks the next query.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&authModel.UserModel{},
		&authModel.ProfileModel{},
		&weddingModel.WeddingModel{},
		&weddingModel.WeddingEventModel{},
	))
	return db
}

// InUse reports connections currently checked out of the pool.
func InUse(t *testing.T, db *gorm.DB) int {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	return sqlDB.Stats().InUse
}
