package config

import (
	"fmt"

	"prompthub/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitDB opens the persistent store and makes sure the prompts table exists.
func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn, err := cfg.StoreDSN()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect store: %w", err)
	}

	if err := db.AutoMigrate(&models.Prompt{}); err != nil {
		return nil, fmt.Errorf("migrate prompts: %w", err)
	}

	return db, nil
}
