package database

import (
	"database/sql"
	"fmt"
	"time"

	"replink_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the connection pool and runs schema migration. The GORM
// handle is only used for migration; the repositories work on the raw pool.
func Connect(dsn string) (*gorm.DB, *sql.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(gormDB); err != nil {
		return nil, nil, err
	}

	return gormDB, sqlDB, nil
}

// Migrate brings the schema up to date for every persisted model.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Company{},
		&models.Rep{},
		&models.Admin{},
		&models.Gig{},
		&models.Application{},
		&models.Report{},
		&models.SuspiciousActivity{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
