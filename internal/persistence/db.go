package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"neighbornet/internal/config"
)

type DB struct {
	db     *gorm.DB
	Config *config.Config
}

func (db *DB) Model(a any) *gorm.DB {
	return db.db.Model(a)
}

func (db *DB) WithContext(ctx context.Context) *gorm.DB {
	return db.db.WithContext(ctx)
}

func (db *DB) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return db.db.WithContext(ctx).Transaction(fn)
}

func (db *DB) EstimatedCount(ctx context.Context, tableName string) (int64, error) {
	var count int64
	return count, db.db.WithContext(ctx).Raw(
		`SELECT reltuples::bigint AS count 
				FROM pg_class 
				WHERE relname = ?`, tableName,
	).Scan(&count).Error
}

func (db *DB) Init(_ context.Context) error {
	if db.Config.DatabaseURL == "" {
		return ErrNoDatabaseURL
	}

	logMode := logger.Silent
	if db.Config.LogLevel == "debug" {
		logMode = logger.Info
	}

	gormDB, err := gorm.Open(postgres.Open(db.Config.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	db.db = gormDB

	return nil
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) DB() (*sql.DB, error) {
	return db.db.DB()
}

func (db *DB) Shutdown(_ context.Context) error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
