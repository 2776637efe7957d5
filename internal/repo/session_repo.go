// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for admin sessions
// used to verify bearer tokens on admin endpoints.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mumsspace/go-site-backend/internal/domain"
)

// CreateSession inserts a session row expiring at now+ttl.
func CreateSession(ctx context.Context, db *gorm.DB, token string, ttl time.Duration) (*domain.AdminSession, error) {
	now := time.Now().UTC()
	s := &domain.AdminSession{
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetSession returns a non-expired session or ErrNotFound.
func GetSession(ctx context.Context, db *gorm.DB, token string, now time.Time) (*domain.AdminSession, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	var s domain.AdminSession
	err := db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, now).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSession removes one session (logout). Deleting an unknown token is
// not an error.
func DeleteSession(ctx context.Context, db *gorm.DB, token string) error {
	return db.WithContext(ctx).Delete(&domain.AdminSession{}, "token = ?", token).Error
}

// PurgeExpiredSessions deletes all sessions whose expiry is in the past.
// Called opportunistically on login to keep the table bounded.
func PurgeExpiredSessions(ctx context.Context, db *gorm.DB, now time.Time) error {
	return db.WithContext(ctx).Delete(&domain.AdminSession{}, "expires_at <= ?", now).Error
}
