package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectPostgres opens the marketplace database and migrates the given models.
//
// Supported env vars:
//   - DB_AUTO_MIGRATE (default: true)
func ConnectPostgres(dsn string, models ...any) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect postgres: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get postgres pool: %v", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if getenvDefault("DB_AUTO_MIGRATE", "true") == "true" && len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			log.Fatalf("failed to migrate postgres: %v", err)
		}
		log.Printf("[database] postgres migrated models=%d", len(models))
	}
	log.Printf("[database] postgres connected")
	return db
}
