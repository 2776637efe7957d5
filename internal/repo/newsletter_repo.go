// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for newsletter
// signups.
//
// Email uniqueness is enforced by the database unique index, not by a
// read-before-write check, so the insert is an atomic "insert if absent":
// concurrent signups for the same address cannot both succeed.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mumsspace/go-site-backend/internal/domain"
)

// CreateSignup inserts a signup row for email. If the address is already
// subscribed it returns ErrDuplicate (mapped from the unique violation).
func CreateSignup(ctx context.Context, db *gorm.DB, email string) (*domain.NewsletterSignup, error) {
	n := &domain.NewsletterSignup{
		ID:           uuid.NewString(),
		Email:        email,
		SubscribedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(n).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return n, nil
}

// ListSignups returns all signups ordered by subscription time descending.
func ListSignups(ctx context.Context, db *gorm.DB) ([]domain.NewsletterSignup, error) {
	var out []domain.NewsletterSignup
	err := db.WithContext(ctx).Order("subscribed_at desc").Find(&out).Error
	return out, err
}

// CountSignups returns the total number of stored signups.
func CountSignups(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.NewsletterSignup{}).Count(&total).Error
	return total, err
}
