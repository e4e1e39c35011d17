package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitReady_FirstAttempt(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()

	err = WaitReady(db, 3, time.Millisecond)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitReady_RecoversAfterFailures(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(fmt.Errorf("locked"))
	mock.ExpectPing().WillReturnError(fmt.Errorf("locked"))
	mock.ExpectPing()

	err = WaitReady(db, 5, time.Millisecond)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitReady_ExhaustsAttempts(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	for i := 0; i < 3; i++ {
		mock.ExpectPing().WillReturnError(fmt.Errorf("locked"))
	}

	err = WaitReady(db, 3, time.Millisecond)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after 3 attempts")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_HealthCheck(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	assert.NoError(t, db.HealthCheck())
}
