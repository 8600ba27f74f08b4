package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"salon-site-server/logx"
	"salon-site-server/models"
)

var DB *gorm.DB

// Initialize connects to Postgres and migrates the catalog table
func Initialize(connString string) error {
	if connString == "" {
		return fmt.Errorf("DB_URL is required. Set DB_URL to a valid Postgres URL")
	}

	gormLogger := logger.New(
		logx.GormWriter{},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var err error
	DB, err = gorm.Open(postgres.Open(connString), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	logx.Info().Msg("✅ Successfully connected to database")

	if err := DB.AutoMigrate(&models.ServiceRecord{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logx.Info().Msg("✅ Database migrations completed successfully")
	return nil
}

// SeedCatalog inserts records when the catalog table is empty
func SeedCatalog(ctx context.Context, db *gorm.DB, records []models.ServiceRecord) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.ServiceRecord{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check catalog count: %w", err)
	}

	if count > 0 {
		logx.Info().Int64("records", count).Msg("⚠️ Catalog already seeded, skipping insertion")
		return nil
	}
	if len(records) == 0 {
		return nil
	}

	if err := db.WithContext(ctx).CreateInBatches(records, 100).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	logx.Info().Int("records", len(records)).Msg("✅ Catalog seeded")
	return nil
}

// Close releases the connection pool
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
