package database

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	assert.NotNil(t, runner)
	assert.Equal(t, db, runner.db)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db)
	err = runner.WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db)

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = 2
	retryInterval = 100 * time.Millisecond
	defer func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	}()

	err = runner.WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = 2
	retryInterval = 100 * time.Millisecond
	defer func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	}()

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	runner := NewMigrationRunner(db)
	err = runner.WaitForDatabase()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after")
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := &MigrationRunner{
		db:             db,
		migrationsPath: "/nonexistent/path/to/migrations",
		seedsPath:      seedsPath,
	}

	err = runner.RunMigrations()

	// Missing directory is not an error, just a no-op
	assert.NoError(t, err)
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("AUTO_MIGRATE", "false")

	assert.NoError(t, RunMigrationsIfEnabled(db))
}
