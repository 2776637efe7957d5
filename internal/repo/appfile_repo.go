// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for app build
// files (downloadable artifacts per platform).
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mumsspace/go-site-backend/internal/domain"
)

// CreateAppFile inserts a new build artifact row. When the new row is
// active, previously active builds for the same platform are deactivated
// in the same transaction so at most one build per platform stays active.
func CreateAppFile(ctx context.Context, db *gorm.DB, platform, fileName, filePath, version string, isActive bool) (*domain.AppFile, error) {
	f := &domain.AppFile{
		ID:         uuid.NewString(),
		Platform:   platform,
		FileName:   fileName,
		FilePath:   filePath,
		Version:    version,
		IsActive:   isActive,
		UploadedAt: time.Now().UTC(),
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if isActive {
			if err := tx.Model(&domain.AppFile{}).
				Where("platform = ? AND is_active = ?", platform, true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(f).Error
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ListActiveAppFiles returns active builds, optionally filtered by platform,
// newest upload first.
func ListActiveAppFiles(ctx context.Context, db *gorm.DB, platform string) ([]domain.AppFile, error) {
	q := db.WithContext(ctx).Where("is_active = ?", true)
	if platform != "" {
		q = q.Where("platform = ?", platform)
	}
	var out []domain.AppFile
	err := q.Order("uploaded_at desc").Find(&out).Error
	return out, err
}

// DeactivateAppFile marks one build as inactive. Returns ErrNotFound if the
// ID does not exist. Deactivating an already inactive build is a no-op that
// still succeeds, mirroring DELETE idempotency at the HTTP layer.
func DeactivateAppFile(ctx context.Context, db *gorm.DB, id string) error {
	var f domain.AppFile
	if err := db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).
		Model(&domain.AppFile{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
