// Package services – ReviewService
//
// This file implements the ReviewService, which governs review submission,
// listing, and the admin reply annotation. It enforces the input bounds
// (name length, rating range, body length, reply length), normalizes free
// text to NFC before storage, and coordinates repository operations.
// Service-level errors (e.g. ErrInvalidRating, ErrReviewNotFound) are
// returned for predictable cases so handlers can map them to HTTP results
// consistently.
package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"

	"github.com/mumsspace/go-site-backend/internal/domain"
	"github.com/mumsspace/go-site-backend/internal/repo"
)

// Review input bounds, applied on rune counts of NFC-normalized text.
const (
	minUserNameLen   = 2
	minReviewTextLen = 10
	maxReviewTextLen = 2000
	minReplyLen      = 1
	maxReplyLen      = 500
)

// ReviewService implements the use-cases around reviews. Validation happens
// here, server-side, regardless of what the submitting client claims to
// have checked.
type ReviewService struct {
	// DB is the database handle used for all review operations.
	DB *gorm.DB
}

// normalizeText trims surrounding whitespace and applies Unicode NFC so
// length checks and stored text are stable across composed/decomposed input.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Submit validates and stores a new review. The verified flag is recorded
// as asserted by the caller; reply fields always start out null.
//
// Validation:
//   - userName >= 2 characters after trimming; otherwise ErrInvalidUserName.
//   - rating in [1,5]; otherwise ErrInvalidRating.
//   - reviewText 10–2000 characters after trimming; otherwise ErrInvalidReviewText.
func (s *ReviewService) Submit(ctx context.Context, userName string, rating int, reviewText string, verified bool) (*domain.Review, error) {
	userName = normalizeText(userName)
	reviewText = normalizeText(reviewText)

	if utf8.RuneCountInString(userName) < minUserNameLen {
		return nil, ErrInvalidUserName
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if n := utf8.RuneCountInString(reviewText); n < minReviewTextLen || n > maxReviewTextLen {
		return nil, ErrInvalidReviewText
	}

	return repo.CreateReview(ctx, s.DB, userName, rating, reviewText, verified)
}

// List returns reviews newest first. A limit <= 0 returns all reviews.
func (s *ReviewService) List(ctx context.Context, limit int) ([]domain.Review, error) {
	return repo.ListReviews(ctx, s.DB, limit)
}

// Reply overwrites the admin reply on a review and returns the updated
// record. Replying again replaces the previous reply; no history is kept.
//
// Validation:
//   - reviewID must be non-empty; a missing review yields ErrReviewNotFound.
//   - reply 1–500 characters after trimming; otherwise ErrInvalidReply.
func (s *ReviewService) Reply(ctx context.Context, reviewID, reply string) (*domain.Review, error) {
	reply = normalizeText(reply)
	if n := utf8.RuneCountInString(reply); n < minReplyLen || n > maxReplyLen {
		return nil, ErrInvalidReply
	}
	if strings.TrimSpace(reviewID) == "" {
		return nil, ErrReviewNotFound
	}

	if err := repo.UpdateAdminReply(ctx, s.DB, reviewID, reply, time.Now().UTC()); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return repo.GetReview(ctx, s.DB, reviewID)
}
