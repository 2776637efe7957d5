// Package services – AdminService
//
// This file implements the AdminService, which handles administrator login,
// session validation, and logout. Credentials are verified server-side
// against an Argon2id hash from configuration; successful logins mint an
// opaque random token persisted with an expiry.
package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mumsspace/go-site-backend/internal/auth"
	"github.com/mumsspace/go-site-backend/internal/repo"
)

// sessionTokenBytes is the entropy of a session token before encoding.
const sessionTokenBytes = 32

// AdminService implements administrator authentication.
type AdminService struct {
	// DB is the database handle used for session persistence.
	DB *gorm.DB

	// PasswordHash is the Argon2id hash of the admin password. Login is
	// disabled entirely when it is empty.
	PasswordHash string

	// SessionTTL bounds how long a minted session token stays valid.
	SessionTTL time.Duration
}

// Login verifies the password and mints a new session token. It returns
// ErrLoginNotConfigured when no password hash is configured and
// ErrInvalidCredentials when verification fails.
func (s *AdminService) Login(ctx context.Context, password string) (token string, expiresAt time.Time, err error) {
	if s.PasswordHash == "" {
		return "", time.Time{}, ErrLoginNotConfigured
	}
	ok, err := auth.VerifyPassword(password, s.PasswordHash)
	if err != nil || !ok {
		return "", time.Time{}, ErrInvalidCredentials
	}

	// Opportunistic cleanup; stale rows are harmless beyond disk space.
	_ = repo.PurgeExpiredSessions(ctx, s.DB, time.Now().UTC())

	raw := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", time.Time{}, fmt.Errorf("generate session token: %w", err)
	}
	token = base64.RawURLEncoding.EncodeToString(raw)

	sess, err := repo.CreateSession(ctx, s.DB, token, s.SessionTTL)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, sess.ExpiresAt, nil
}

// Validate reports whether token identifies a live session.
func (s *AdminService) Validate(ctx context.Context, token string) error {
	if token == "" {
		return ErrSessionNotFound
	}
	if _, err := repo.GetSession(ctx, s.DB, token, time.Now().UTC()); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

// Logout revokes token. Revoking an unknown token is not an error.
func (s *AdminService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return repo.DeleteSession(ctx, s.DB, token)
}
