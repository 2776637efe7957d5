// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Review model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a review is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mumsspace/go-site-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate indicates that an insert violated a unique constraint
// (duplicate newsletter email or concurrently created platform row).
var ErrDuplicate = errors.New("duplicate")

// isUniqueViolation detects unique-constraint violations across the error
// shapes the pure-Go SQLite driver produces.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint failed") ||
		strings.Contains(low, "constraint failed: unique") ||
		strings.Contains(low, "duplicate key")
}

// CreateReview inserts a new Review row. The review ID is a randomly
// generated UUID, CreatedAt is set to UTC now, and the reply fields start
// out nil. On success it returns the persisted Review.
func CreateReview(ctx context.Context, db *gorm.DB, userName string, rating int, reviewText string, verified bool) (*domain.Review, error) {
	r := &domain.Review{
		ID:         uuid.NewString(),
		UserName:   userName,
		Rating:     rating,
		ReviewText: reviewText,
		Verified:   verified,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// ListReviews returns reviews ordered by creation time descending (newest
// first). A limit <= 0 returns all rows. An empty slice is a valid result.
func ListReviews(ctx context.Context, db *gorm.DB, limit int) ([]domain.Review, error) {
	q := db.WithContext(ctx).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []domain.Review
	err := q.Find(&out).Error
	return out, err
}

// GetReview fetches a single review by ID, or ErrNotFound if missing.
func GetReview(ctx context.Context, db *gorm.DB, id string) (*domain.Review, error) {
	var r domain.Review
	if err := db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateAdminReply overwrites the admin reply on a review and stamps a new
// reply timestamp. Both fields are written in one UPDATE so the pair stays
// consistent. If no row matches, it returns ErrNotFound.
func UpdateAdminReply(ctx context.Context, db *gorm.DB, id, reply string, at time.Time) error {
	res := db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"admin_reply":    reply,
			"admin_reply_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountReviews returns the total number of stored reviews.
func CountReviews(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Review{}).Count(&total).Error
	return total, err
}
