// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping helpers for
// SQLite (pure Go driver), schema migrations, and platform seeding.
package repo

import (
	"context"
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/mumsspace/go-site-backend/internal/domain"
)

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
// Query tracing is attached via the GORM OpenTelemetry plugin; it is a
// no-op unless a global tracer provider has been installed.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA foreign_keys=ON;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// AutoMigrate creates or updates the schema for all domain models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Review{},
		&domain.DownloadStat{},
		&domain.NewsletterSignup{},
		&domain.AppFile{},
		&domain.AdminSession{},
	)
}

// SeedDownloadStats ensures a zero-count row exists for each known platform.
// Existing rows are left untouched, so re-running at every startup never
// resets counters. Unknown platforms still get rows lazily on first
// increment; seeding only guarantees the known set shows up in listings
// before any download happens.
func SeedDownloadStats(ctx context.Context, db *gorm.DB, platforms []string) error {
	now := time.Now().UTC()
	for _, p := range platforms {
		var count int64
		if err := db.WithContext(ctx).
			Model(&domain.DownloadStat{}).
			Where("platform = ?", p).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		row := &domain.DownloadStat{
			ID:          uuid.NewString(),
			Platform:    p,
			LastUpdated: now,
		}
		if err := db.WithContext(ctx).Create(row).Error; err != nil && !isUniqueViolation(err) {
			return err
		}
	}
	return nil
}
