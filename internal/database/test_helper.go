package database

import (
	"log/slog"
	"testing"

	"pocketbank/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// SeedTestData loads the fixed demo dataset into a test database with a
// deterministic generated history.
func SeedTestData(t *testing.T, db *DB) {
	t.Helper()

	seeder := NewSeeder(db, &config.DemoConfig{
		SeedHistory:  true,
		HistoryCount: 5,
		HistorySeed:  42,
	}, slog.Default())

	if err := seeder.Seed(); err != nil {
		t.Fatalf("failed to seed test data: %v", err)
	}
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Close(); err != nil {
		t.Fatalf("failed to close test database: %v", err)
	}
}
