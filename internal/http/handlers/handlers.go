// Handler wiring.
//
// This file declares the service contracts consumed by the HTTP layer and the
// Handlers aggregate that binds them. Handlers are transport-thin: they
// validate input, call application services, and translate results into HTTP
// responses. Depending on interfaces rather than concrete services keeps the
// transport layer testable with stubs.
package handlers

import (
	"context"
	"time"

	"github.com/mumsspace/go-site-backend/internal/domain"
)

// ReviewService defines review operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ReviewService interface {
	// Submit validates and stores a new review.
	Submit(ctx context.Context, userName string, rating int, reviewText string, verified bool) (*domain.Review, error)
	// List returns reviews newest first; limit <= 0 means all.
	List(ctx context.Context, limit int) ([]domain.Review, error)
	// Reply attaches or replaces the admin reply on a review.
	Reply(ctx context.Context, reviewID, reply string) (*domain.Review, error)
}

// StatsService defines download-counter operations consumed by HTTP handlers.
type StatsService interface {
	// List returns all per-platform download counters.
	List(ctx context.Context) ([]domain.DownloadStat, error)
	// Record bumps the counter for platform, creating it on first download.
	Record(ctx context.Context, platform string) (*domain.DownloadStat, error)
}

// NewsletterService defines newsletter operations consumed by HTTP handlers.
type NewsletterService interface {
	// Signup validates, stores, and optionally forwards a subscription.
	Signup(ctx context.Context, email string) (*domain.NewsletterSignup, error)
	// List returns all recorded signups, newest first.
	List(ctx context.Context) ([]domain.NewsletterSignup, error)
}

// AppFileService defines app build catalog operations consumed by HTTP handlers.
type AppFileService interface {
	// Register records a new build artifact.
	Register(ctx context.Context, platform, fileName, filePath, version string, isActive bool) (*domain.AppFile, error)
	// ListActive returns active builds, optionally filtered by platform.
	ListActive(ctx context.Context, platform string) ([]domain.AppFile, error)
	// Deactivate retires a build from the public catalog.
	Deactivate(ctx context.Context, id string) error
}

// AdminService defines administrator authentication operations.
type AdminService interface {
	// Login verifies the password and mints a session token.
	Login(ctx context.Context, password string) (token string, expiresAt time.Time, err error)
	// Validate reports whether token identifies a live session.
	Validate(ctx context.Context, token string) error
	// Logout revokes token.
	Logout(ctx context.Context, token string) error
}

// Handlers groups the HTTP endpoints for reviews, download stats, newsletter,
// app files, and admin authentication.
type Handlers struct {
	reviewSvc     ReviewService
	statsSvc      StatsService
	newsletterSvc NewsletterService
	appFileSvc    AppFileService
	adminSvc      AdminService
}

// New constructs a Handlers instance bound to the given services.
func New(reviewSvc ReviewService, statsSvc StatsService, newsletterSvc NewsletterService, appFileSvc AppFileService, adminSvc AdminService) *Handlers {
	return &Handlers{
		reviewSvc:     reviewSvc,
		statsSvc:      statsSvc,
		newsletterSvc: newsletterSvc,
		appFileSvc:    appFileSvc,
		adminSvc:      adminSvc,
	}
}
