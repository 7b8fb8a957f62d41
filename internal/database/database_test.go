package database_test

import (
	"testing"

	"gamejam-portal-backend/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDialector(t *testing.T) (gorm.Dialector, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return postgres.New(postgres.Config{Conn: sqlDB, PreferSimpleProtocol: true}), mock
}

func TestOpenSkipMigrate(t *testing.T) {
	dialector, mock := newDialector(t)

	db, err := database.Open(dialector, &database.Options{LogLevel: logger.Silent, SkipMigrate: true})

	require.NoError(t, err)
	require.NotNil(t, db)
	// no schema queries were issued
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenMigratesByDefault(t *testing.T) {
	dialector, _ := newDialector(t)

	// sqlmock has no expectations, so the first migration query fails
	_, err := database.Open(dialector, &database.Options{LogLevel: logger.Silent})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "auto-migrate")
}

func TestOpenAppliesPoolDefaults(t *testing.T) {
	dialector, _ := newDialector(t)

	db, err := database.Open(dialector, &database.Options{LogLevel: logger.Silent, SkipMigrate: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 20, sqlDB.Stats().MaxOpenConnections)
}
