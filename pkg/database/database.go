package database

import (
	"fmt"
	"maidx/pkg/config"
	"maidx/pkg/database/models"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	conn   *gorm.DB
	connMu sync.Mutex
)

// GetConnection is a singleton implementation of the database.
// Return the connection pool.
func GetConnection() (*gorm.DB, error) {
	connMu.Lock()
	defer connMu.Unlock()

	if conn != nil {
		return conn, nil
	}

	db, err := NewConnection()
	if err != nil {
		return nil, err
	}

	conn = db
	return conn, nil
}

// NewConnection opens a new connection pool to the database.
func NewConnection() (*gorm.DB, error) {
	// Create the database instance.
	db, err := gorm.Open(postgres.Open(config.Database.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Get the SQL database itself.
	sqlDb, sqlErr := db.DB()

	// Verify if could get the connection.
	if sqlErr != nil {
		return nil, fmt.Errorf("failed to get the sql connection: %v", sqlErr)
	}

	// Set the pool values.
	sqlDb.SetMaxOpenConns(50)
	sqlDb.SetMaxIdleConns(10)
	sqlDb.SetConnMaxLifetime(time.Hour)
	sqlDb.SetConnMaxIdleTime(time.Hour)

	// Test the connection
	if err := sqlDb.Ping(); err != nil {
		sqlDb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, err
}

// RunMigrations creates the tables used as the Redis fallback storage.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.CacheBackup{}); err != nil {
		return fmt.Errorf("couldn't run the migrations: %v", err)
	}

	return nil
}
