// Package services – StatsService
//
// This file implements the StatsService for per-platform download counters.
// Counters only ever go up: the service exposes listing and a single
// increment operation, and the repository performs the increment as one
// atomic SQL UPDATE so parallel requests cannot lose counts.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mumsspace/go-site-backend/internal/domain"
	"github.com/mumsspace/go-site-backend/internal/repo"
)

// StatsService implements the use-cases around download statistics.
type StatsService struct {
	// DB is the database handle used for all counter operations.
	DB *gorm.DB
}

// List returns all platform counter rows.
func (s *StatsService) List(ctx context.Context) ([]domain.DownloadStat, error) {
	return repo.ListDownloadStats(ctx, s.DB)
}

// Record adds one download for platform, creating the counter row on first
// sight. Any non-empty string is accepted as a platform identifier; there
// is deliberately no enum check so new platforms need no code change.
func (s *StatsService) Record(ctx context.Context, platform string) (*domain.DownloadStat, error) {
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return nil, ErrInvalidPlatform
	}
	return repo.IncrementDownload(ctx, s.DB, platform)
}
