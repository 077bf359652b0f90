package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/onegreenvn/campaign-generator-backend/internal/config"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
)

// DB is the global database instance
var DB *gorm.DB

// InitDB opens the Postgres connection and migrates the schema
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("missing required database environment variables. Please check your .env file")
	}

	// GORM logs through logrus
	gormLogger := logger.New(
		logrus.StandardLogger(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.Exec("CREATE SCHEMA IF NOT EXISTS public").Error; err != nil {
		return nil, fmt.Errorf("failed to create public schema: %w", err)
	}
	if err := db.Exec("SET search_path TO public").Error; err != nil {
		return nil, fmt.Errorf("failed to set search_path: %w", err)
	}
	// gen_random_uuid() is built in since Postgres 13, pgcrypto covers older servers
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto SCHEMA public").Error; err != nil {
		return nil, fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	DB = db
	logrus.Info("Database connection established")
	return db, nil
}

// Migrate creates or updates every table. Organizations go first so the
// product and service foreign keys can reference them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Organization{}); err != nil {
		return fmt.Errorf("failed to migrate organizations table: %w", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Service{},
		&models.Campaign{},
		&models.GenerationLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Warnf("Failed to get database handle for close: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Warnf("Failed to close database: %v", err)
	}
}
