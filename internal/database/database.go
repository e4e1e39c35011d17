package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"pocketbank/internal/config"
	"pocketbank/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// New opens the mock-data store. The default DSN is an in-memory sqlite
// database; nothing here survives a restart.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// A shared in-memory sqlite database only stays alive while at least one
	// connection holds it open, so the pool stays at a single connection.
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := WaitReady(sqlDB, cfg.MaxPingAttempts, cfg.PingInterval); err != nil {
		return nil, err
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// WaitReady pings the database until it answers or the attempts run out.
func WaitReady(db *sql.DB, maxAttempts int, interval time.Duration) error {
	var lastErr error

	for i := 0; i < maxAttempts; i++ {
		lastErr = db.Ping()
		if lastErr == nil {
			return nil
		}

		log.Printf("Database not ready (attempt %d/%d): %v", i+1, maxAttempts, lastErr)
		time.Sleep(interval)
	}

	return fmt.Errorf("database not ready after %d attempts: %w", maxAttempts, lastErr)
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.UserProfile{},
		&models.Account{},
		&models.Transaction{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
