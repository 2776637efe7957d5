// Package services – AppFileService
//
// This file implements the AppFileService, which manages the catalog of
// downloadable app builds per platform. Registration enforces required
// fields; activation bookkeeping (one active build per platform) lives in
// the repository transaction.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mumsspace/go-site-backend/internal/domain"
	"github.com/mumsspace/go-site-backend/internal/repo"
)

// AppFileService implements the use-cases around app build files.
type AppFileService struct {
	// DB is the database handle used for app-file persistence.
	DB *gorm.DB
}

// Register records a new build artifact. Platform, file name, file path and
// version are all required; isActive defaults to true at the handler layer.
func (s *AppFileService) Register(ctx context.Context, platform, fileName, filePath, version string, isActive bool) (*domain.AppFile, error) {
	platform = strings.TrimSpace(platform)
	fileName = strings.TrimSpace(fileName)
	filePath = strings.TrimSpace(filePath)
	version = strings.TrimSpace(version)
	if platform == "" || fileName == "" || filePath == "" || version == "" {
		return nil, ErrInvalidAppFile
	}
	return repo.CreateAppFile(ctx, s.DB, platform, fileName, filePath, version, isActive)
}

// ListActive returns the currently active builds, optionally filtered by
// platform. This is the public catalog the download page renders.
func (s *AppFileService) ListActive(ctx context.Context, platform string) ([]domain.AppFile, error) {
	return repo.ListActiveAppFiles(ctx, s.DB, strings.TrimSpace(platform))
}

// Deactivate retires a build from the public catalog.
func (s *AppFileService) Deactivate(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrAppFileNotFound
	}
	if err := repo.DeactivateAppFile(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrAppFileNotFound
		}
		return err
	}
	return nil
}
