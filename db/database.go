package db

import (
	"fmt"
	"log"

	"builtbydesign_go/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// walDSNOptions enables WAL journaling so lead writes and page renders do not
// block each other on the single sqlite file.
const walDSNOptions = "?_journal_mode=WAL"

var DB *gorm.DB

// Initialize opens the sqlite database. Query logging is verbose everywhere
// except production.
func Initialize(dbPath string, environment string) error {
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath+walDSNOptions), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established (WAL mode enabled)")
	return nil
}

// Migrate creates or updates the schema for everything the site persists:
// leads, the consent log, analytics events, and admin accounts with their
// sessions.
func Migrate() error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	if err := DB.AutoMigrate(
		&models.Lead{},
		&models.ConsentLog{},
		&models.AnalyticsEvent{},
		&models.User{},
		&models.Session{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
