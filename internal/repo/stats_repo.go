// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for per-platform
// download counters.
//
// The increment path is deliberately a single SQL UPDATE with an arithmetic
// expression rather than a read-modify-write in Go: the database serializes
// concurrent increments for the same platform, so sequential counts are
// exact and parallel increments cannot lose updates.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mumsspace/go-site-backend/internal/domain"
)

// ListDownloadStats returns all platform counter rows, ordered by platform
// name for stable output. An empty slice is a valid result.
func ListDownloadStats(ctx context.Context, db *gorm.DB) ([]domain.DownloadStat, error) {
	var out []domain.DownloadStat
	err := db.WithContext(ctx).Order("platform asc").Find(&out).Error
	return out, err
}

// GetDownloadStat fetches the counter row for one platform, or ErrNotFound.
func GetDownloadStat(ctx context.Context, db *gorm.DB, platform string) (*domain.DownloadStat, error) {
	var s domain.DownloadStat
	if err := db.WithContext(ctx).First(&s, "platform = ?", platform).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// IncrementDownload adds one to the counter for platform, creating the row
// with count 1 if the platform has never been seen. It returns the row as
// stored after the increment.
//
// The unseen-platform path races benignly: if two requests both miss the
// UPDATE and one wins the INSERT, the loser hits the unique index on
// platform and falls back to a second UPDATE, so exactly two increments
// are recorded.
func IncrementDownload(ctx context.Context, db *gorm.DB, platform string) (*domain.DownloadStat, error) {
	now := time.Now().UTC()

	res := db.WithContext(ctx).
		Model(&domain.DownloadStat{}).
		Where("platform = ?", platform).
		Updates(map[string]any{
			"download_count": gorm.Expr("download_count + 1"),
			"last_updated":   now,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		row := &domain.DownloadStat{
			ID:            uuid.NewString(),
			Platform:      platform,
			DownloadCount: 1,
			LastUpdated:   now,
		}
		err := db.WithContext(ctx).Create(row).Error
		switch {
		case err == nil:
			return row, nil
		case isUniqueViolation(err):
			// Lost the insert race; the row exists now, retry the update.
			res = db.WithContext(ctx).
				Model(&domain.DownloadStat{}).
				Where("platform = ?", platform).
				Updates(map[string]any{
					"download_count": gorm.Expr("download_count + 1"),
					"last_updated":   now,
				})
			if res.Error != nil {
				return nil, res.Error
			}
		default:
			return nil, err
		}
	}

	return GetDownloadStat(ctx, db, platform)
}
