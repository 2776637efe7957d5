package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mumsspace/go-site-backend/internal/domain"
)

// ---------- stub services ----------
//
// Each stub exposes function fields so individual tests can script exactly the
// behavior they need; unset fields return zero values.

type stubReviewSvc struct {
	submitFn func(ctx context.Context, userName string, rating int, reviewText string, verified bool) (*domain.Review, error)
	listFn   func(ctx context.Context, limit int) ([]domain.Review, error)
	replyFn  func(ctx context.Context, reviewID, reply string) (*domain.Review, error)
}

func (s *stubReviewSvc) Submit(ctx context.Context, userName string, rating int, reviewText string, verified bool) (*domain.Review, error) {
	if s.submitFn != nil {
		return s.submitFn(ctx, userName, rating, reviewText, verified)
	}
	return &domain.Review{}, nil
}

func (s *stubReviewSvc) List(ctx context.Context, limit int) ([]domain.Review, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit)
	}
	return nil, nil
}

func (s *stubReviewSvc) Reply(ctx context.Context, reviewID, reply string) (*domain.Review, error) {
	if s.replyFn != nil {
		return s.replyFn(ctx, reviewID, reply)
	}
	return &domain.Review{}, nil
}

type stubStatsSvc struct {
	listFn   func(ctx context.Context) ([]domain.DownloadStat, error)
	recordFn func(ctx context.Context, platform string) (*domain.DownloadStat, error)
}

func (s *stubStatsSvc) List(ctx context.Context) ([]domain.DownloadStat, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubStatsSvc) Record(ctx context.Context, platform string) (*domain.DownloadStat, error) {
	if s.recordFn != nil {
		return s.recordFn(ctx, platform)
	}
	return &domain.DownloadStat{Platform: platform}, nil
}

type stubNewsletterSvc struct {
	signupFn func(ctx context.Context, email string) (*domain.NewsletterSignup, error)
	listFn   func(ctx context.Context) ([]domain.NewsletterSignup, error)
}

func (s *stubNewsletterSvc) Signup(ctx context.Context, email string) (*domain.NewsletterSignup, error) {
	if s.signupFn != nil {
		return s.signupFn(ctx, email)
	}
	return &domain.NewsletterSignup{Email: email}, nil
}

func (s *stubNewsletterSvc) List(ctx context.Context) ([]domain.NewsletterSignup, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

type stubAppFileSvc struct {
	registerFn   func(ctx context.Context, platform, fileName, filePath, version string, isActive bool) (*domain.AppFile, error)
	listActiveFn func(ctx context.Context, platform string) ([]domain.AppFile, error)
	deactivateFn func(ctx context.Context, id string) error
}

func (s *stubAppFileSvc) Register(ctx context.Context, platform, fileName, filePath, version string, isActive bool) (*domain.AppFile, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, platform, fileName, filePath, version, isActive)
	}
	return &domain.AppFile{}, nil
}

func (s *stubAppFileSvc) ListActive(ctx context.Context, platform string) ([]domain.AppFile, error) {
	if s.listActiveFn != nil {
		return s.listActiveFn(ctx, platform)
	}
	return nil, nil
}

func (s *stubAppFileSvc) Deactivate(ctx context.Context, id string) error {
	if s.deactivateFn != nil {
		return s.deactivateFn(ctx, id)
	}
	return nil
}

type stubAdminSvc struct {
	loginFn    func(ctx context.Context, password string) (string, time.Time, error)
	validateFn func(ctx context.Context, token string) error
	logoutFn   func(ctx context.Context, token string) error
}

func (s *stubAdminSvc) Login(ctx context.Context, password string) (string, time.Time, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, password)
	}
	return "tok", time.Now().Add(time.Hour), nil
}

func (s *stubAdminSvc) Validate(ctx context.Context, token string) error {
	if s.validateFn != nil {
		return s.validateFn(ctx, token)
	}
	return nil
}

func (s *stubAdminSvc) Logout(ctx context.Context, token string) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx, token)
	}
	return nil
}

// newTestHandlers builds a Handlers over the given stubs, substituting fresh
// zero stubs for nil entries.
func newTestHandlers(rv *stubReviewSvc, st *stubStatsSvc, nl *stubNewsletterSvc, af *stubAppFileSvc, ad *stubAdminSvc) *Handlers {
	if rv == nil {
		rv = &stubReviewSvc{}
	}
	if st == nil {
		st = &stubStatsSvc{}
	}
	if nl == nil {
		nl = &stubNewsletterSvc{}
	}
	if af == nil {
		af = &stubAppFileSvc{}
	}
	if ad == nil {
		ad = &stubAdminSvc{}
	}
	gin.SetMode(gin.TestMode)
	return New(rv, st, nl, af, ad)
}
