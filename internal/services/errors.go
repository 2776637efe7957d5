// Package services defines the business logic for reviews, download
// statistics, newsletter signups, app files, and admin sessions. This file
// centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

// Review-related errors.
var (
	// ErrReviewNotFound indicates that the review targeted by an admin
	// reply does not exist.
	ErrReviewNotFound = errors.New("review not found")

	// ErrInvalidUserName is returned when a reviewer display name is
	// shorter than two characters.
	ErrInvalidUserName = errors.New("name must be at least 2 characters")

	// ErrInvalidRating is returned when a rating is outside 1–5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidReviewText is returned when a review body is outside the
	// 10–2000 character bounds.
	ErrInvalidReviewText = errors.New("review must be between 10 and 2000 characters")

	// ErrInvalidReply is returned when an admin reply is empty or longer
	// than 500 characters.
	ErrInvalidReply = errors.New("reply must be between 1 and 500 characters")
)

// Newsletter-related errors.
var (
	// ErrInvalidEmail is returned when an address does not look like an
	// email address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrDuplicateEmail is returned when the address is already subscribed.
	ErrDuplicateEmail = errors.New("email already subscribed")
)

// Download-stats errors.
var (
	// ErrInvalidPlatform is returned when the platform path segment is
	// empty after trimming.
	ErrInvalidPlatform = errors.New("platform must not be empty")
)

// App-file errors.
var (
	// ErrInvalidAppFile is returned when a build registration is missing a
	// required field.
	ErrInvalidAppFile = errors.New("platform, fileName, filePath and version are required")

	// ErrAppFileNotFound indicates the referenced build does not exist.
	ErrAppFileNotFound = errors.New("app file not found")
)

// Admin-auth errors.
var (
	// ErrLoginNotConfigured is returned when no admin password hash is
	// configured; the login endpoint fails closed.
	ErrLoginNotConfigured = errors.New("admin login is not configured")

	// ErrInvalidCredentials is returned for a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound is returned for a missing or expired session token.
	ErrSessionNotFound = errors.New("session not found")
)
