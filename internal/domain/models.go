// Package domain defines the persistence models for reviews, download
// statistics, newsletter signups, and app build files. These types are
// mapped with GORM and form the core data layer of the site backend.
//
// JSON field names follow the public API contract consumed by the web
// client (camelCase), which is why they differ from the snake_case
// convention used in logs and error envelopes.
package domain

import "time"

// Review represents a user-submitted rating with free text, optionally
// annotated with a single admin reply. The admin reply is overwrite-only:
// re-replying replaces the previous text and timestamp, and no history
// is kept.
//
// Invariant: AdminReply and AdminReplyAt are either both nil or both set.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - UserName: display name of the reviewer (min 2 chars, free text).
//   - Rating: star rating, integer in [1,5] (enforced by the service layer
//     and by a DB check constraint).
//   - ReviewText: review body, 10–2000 characters.
//   - Verified: true only for submissions arriving through the app path.
//     The flag is client-asserted and recorded as-is.
//   - AdminReply / AdminReplyAt: optional reply annotation, both nullable.
//   - CreatedAt: insertion timestamp, set server-side, immutable.
type Review struct {
	ID           string     `json:"id"           gorm:"type:char(36);primaryKey"`
	UserName     string     `json:"userName"     gorm:"type:varchar(255);not null"`
	Rating       int        `json:"rating"       gorm:"not null;check:rating BETWEEN 1 AND 5"`
	ReviewText   string     `json:"reviewText"   gorm:"type:text;not null"`
	Verified     bool       `json:"verified"     gorm:"not null;default:false"`
	AdminReply   *string    `json:"adminReply"   gorm:"type:text"`
	AdminReplyAt *time.Time `json:"adminReplyAt"`
	CreatedAt    time.Time  `json:"createdAt"    gorm:"index"`
}

// TableName returns the database table name for Review.
func (Review) TableName() string { return "reviews" }

// DownloadStat is a per-platform monotonically increasing download counter.
// Exactly one row exists per distinct platform string (unique index); rows
// are created lazily on first increment or pre-seeded at startup with a
// zero count for the known platform list.
type DownloadStat struct {
	ID            string    `json:"id"            gorm:"type:char(36);primaryKey"`
	Platform      string    `json:"platform"      gorm:"type:varchar(50);not null;uniqueIndex:ux_stats_platform"`
	DownloadCount int       `json:"downloadCount" gorm:"not null;default:0;check:download_count >= 0"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// TableName returns the database table name for DownloadStat.
func (DownloadStat) TableName() string { return "download_stats" }

// NewsletterSignup records a subscribed email address. Uniqueness is
// enforced by the database (unique index on email), so two concurrent
// signups for the same address cannot both succeed.
type NewsletterSignup struct {
	ID           string    `json:"id"           gorm:"type:char(36);primaryKey"`
	Email        string    `json:"email"        gorm:"type:varchar(320);not null;uniqueIndex:ux_newsletter_email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

// TableName returns the database table name for NewsletterSignup.
func (NewsletterSignup) TableName() string { return "newsletter_signups" }

// AppFile describes a downloadable app build artifact for one platform.
// At most one build per platform should be active at a time; the public
// listing only exposes active rows.
type AppFile struct {
	ID         string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Platform   string    `json:"platform"   gorm:"type:varchar(50);not null;index"`
	FileName   string    `json:"fileName"   gorm:"type:text;not null"`
	FilePath   string    `json:"filePath"   gorm:"type:text;not null"`
	Version    string    `json:"version"    gorm:"type:varchar(64);not null"`
	IsActive   bool      `json:"isActive"   gorm:"not null;default:true"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// TableName returns the database table name for AppFile.
func (AppFile) TableName() string { return "app_files" }

// AdminSession is a server-side admin session issued by the login endpoint
// and verified on every admin request. The opaque token is the primary key;
// expired rows are purged opportunistically on login.
type AdminSession struct {
	Token     string    `json:"-" gorm:"type:varchar(64);primaryKey"`
	CreatedAt time.Time `json:"-"`
	ExpiresAt time.Time `json:"-" gorm:"index"`
}

// TableName returns the database table name for AdminSession.
func (AdminSession) TableName() string { return "admin_sessions" }
