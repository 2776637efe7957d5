// Package services – NewsletterService
//
// This file implements the NewsletterService, which records newsletter
// signups and optionally forwards them to an external mailing-list
// provider. The local insert and the provider call run inside one
// transaction: a provider outage rolls the local row back, so the store
// never claims a subscription the provider rejected.
package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"gorm.io/gorm"

	"github.com/mumsspace/go-site-backend/internal/domain"
	"github.com/mumsspace/go-site-backend/internal/mailer"
	"github.com/mumsspace/go-site-backend/internal/repo"
)

// NewsletterService implements the newsletter signup use-cases.
type NewsletterService struct {
	// DB is the database handle used for signup persistence.
	DB *gorm.DB

	// Provider is the optional external mailing-list integration. When nil,
	// signups are recorded locally only. When set but incompletely
	// configured, signup fails closed with the provider's configuration
	// error rather than silently degrading to local-only.
	Provider mailer.ListProvider
}

// normalizeEmail lowercases and trims an address so "Mum@Example.com" and
// "mum@example.com" dedupe to the same row.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup validates email, enforces uniqueness atomically via the unique
// index, and subscribes the address with the external provider when one is
// configured.
//
// Errors:
//   - ErrInvalidEmail for a malformed address.
//   - ErrDuplicateEmail when the address is already subscribed (locally or
//     as reported by the provider).
//   - mailer.ErrNotConfigured / mailer.ErrProviderFailure passed through for
//     the handler to map to a server-side error.
func (s *NewsletterService) Signup(ctx context.Context, email string) (*domain.NewsletterSignup, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return nil, ErrInvalidEmail
	}

	var out *domain.NewsletterSignup
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := repo.CreateSignup(ctx, tx, email)
		if err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return ErrDuplicateEmail
			}
			return err
		}

		if s.Provider != nil {
			status, err := s.Provider.Subscribe(ctx, email)
			if err != nil {
				// Roll the local row back; the caller can retry later.
				return err
			}
			if status == mailer.StatusAlreadySubscribed {
				// The provider knew the address even though we did not
				// (e.g. state predating this store). Keep the local row so
				// both sides agree going forward.
				return nil
			}
		}

		out = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		// Provider-side duplicate with a fresh local row.
		return nil, ErrDuplicateEmail
	}
	return out, nil
}

// List returns all recorded signups, newest first. Admin-only at the
// transport layer; the service itself has no notion of callers.
func (s *NewsletterService) List(ctx context.Context) ([]domain.NewsletterSignup, error) {
	return repo.ListSignups(ctx, s.DB)
}
