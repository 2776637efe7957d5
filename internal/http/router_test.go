package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mumsspace/go-site-backend/internal/auth"
	"github.com/mumsspace/go-site-backend/internal/config"
	"github.com/mumsspace/go-site-backend/internal/domain"
)

// --- test DB helper (pure-Go sqlite, no CGO) ---
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:routerdb_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Review{},
		&domain.DownloadStat{},
		&domain.NewsletterSignup{},
		&domain.AppFile{},
		&domain.AdminSession{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testConfig(t *testing.T, adminPassword string) config.Config {
	t.Helper()
	cfg := config.Config{
		APIBasePath:          "/api",
		RateRPS:              1000,
		RateBurst:            1000,
		NewsletterRateMax:    100,
		NewsletterRateWindow: time.Hour,
		CORS:                 config.CORSConfig{AllowedOrigins: nil},
		Security:             config.SecurityConfig{EnableHSTS: false},
		OTEL:                 config.OTELConfig{ServiceName: "test-svc"},
		Admin:                config.AdminConfig{SessionTTL: time.Hour},
	}
	if adminPassword != "" {
		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		cfg.Admin.PasswordHash = hash
	}
	return cfg
}

func newRouter(t *testing.T, cfg config.Config) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	db := newTestDB(t)
	RegisterRoutes(r, db, nil, cfg)
	return r, db
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRoutes_Health_Metrics_CORS_Fallbacks(t *testing.T) {
	r, _ := newRouter(t, testConfig(t, ""))

	// /health works
	w := doJSON(r, http.MethodGet, "/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	// CORS (AllowAllOrigins) → header "*"
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}

	// /metrics is wired
	w = doJSON(r, http.MethodGet, "/metrics", "", "")
	if w.Code != http.StatusOK || w.Body.Len() == 0 {
		t.Fatalf("GET /metrics bad: code=%d len=%d", w.Code, w.Body.Len())
	}

	// NoRoute → 404
	if w = doJSON(r, http.MethodGet, "/nope", "", ""); w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope expected 404, got %d", w.Code)
	}

	// NoMethod → 405
	if w = doJSON(r, http.MethodPost, "/health", "", ""); w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health expected 405, got %d", w.Code)
	}
}

func TestRegisterRoutes_CORSWithOrigins_HeaderEcho(t *testing.T) {
	cfg := testConfig(t, "")
	cfg.CORS.AllowedOrigins = []string{"https://mums.example"}
	r, _ := newRouter(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://mums.example")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://mums.example" {
		t.Fatalf("expected allowlisted origin echoed, got %q", got)
	}

	// Unknown origin gets no ACAO header
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected ACAO for unknown origin: %q", got)
	}
}

func TestRegisterRoutes_ReviewLifecycle(t *testing.T) {
	r, _ := newRouter(t, testConfig(t, "pw12345"))

	// Submit a review
	w := doJSON(r, http.MethodPost, "/api/reviews",
		`{"userName":"Maria","rating":5,"reviewText":"Found my village here, thank you!"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/reviews = %d (%s)", w.Code, w.Body.String())
	}
	var created domain.Review
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// List shows it
	w = doJSON(r, http.MethodGet, "/api/reviews", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/reviews = %d", w.Code)
	}
	var listed []domain.Review
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("unexpected listing: %+v", listed)
	}

	// Reply requires admin auth
	replyBody := fmt.Sprintf(`{"reviewId":%q,"adminReply":"Thanks Maria!"}`, created.ID)
	if w = doJSON(r, http.MethodPost, "/api/reviews/reply", replyBody, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated reply expected 401, got %d", w.Code)
	}

	// Login, then reply
	w = doJSON(r, http.MethodPost, "/api/admin/login", `{"password":"pw12345"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("POST /api/admin/login = %d (%s)", w.Code, w.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("unmarshal login: %v", err)
	}

	w = doJSON(r, http.MethodPost, "/api/reviews/reply", replyBody, login.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("authenticated reply = %d (%s)", w.Code, w.Body.String())
	}
	var replied domain.Review
	if err := json.Unmarshal(w.Body.Bytes(), &replied); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if replied.AdminReply == nil || *replied.AdminReply != "Thanks Maria!" || replied.AdminReplyAt == nil {
		t.Fatalf("reply not recorded: %+v", replied)
	}

	// Logout invalidates the token
	if w = doJSON(r, http.MethodPost, "/api/admin/logout", "", login.Token); w.Code != http.StatusNoContent {
		t.Fatalf("logout = %d", w.Code)
	}
	if w = doJSON(r, http.MethodPost, "/api/reviews/reply", replyBody, login.Token); w.Code != http.StatusUnauthorized {
		t.Fatalf("reply with revoked token expected 401, got %d", w.Code)
	}
}

func TestRegisterRoutes_DownloadCounters(t *testing.T) {
	r, _ := newRouter(t, testConfig(t, ""))

	for i := 0; i < 3; i++ {
		w := doJSON(r, http.MethodPost, "/api/download/Android", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("POST /api/download/Android = %d", w.Code)
		}
	}
	w := doJSON(r, http.MethodPost, "/api/download/iPhone", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("POST /api/download/iPhone = %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/download-stats", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/download-stats = %d", w.Code)
	}
	var stats []domain.DownloadStat
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	counts := map[string]int{}
	for _, st := range stats {
		counts[st.Platform] = st.DownloadCount
	}
	if counts["Android"] != 3 || counts["iPhone"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestRegisterRoutes_NewsletterSignupAndAdminListing(t *testing.T) {
	r, _ := newRouter(t, testConfig(t, "pw12345"))

	w := doJSON(r, http.MethodPost, "/api/newsletter/signup", `{"email":"mum@example.com"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("signup = %d (%s)", w.Code, w.Body.String())
	}

	// Duplicate rejected
	w = doJSON(r, http.MethodPost, "/api/newsletter/signup", `{"email":"MUM@example.com"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate signup expected 400, got %d", w.Code)
	}

	// Listing requires auth
	if w = doJSON(r, http.MethodGet, "/api/newsletter/signups", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated listing expected 401, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/api/admin/login", `{"password":"pw12345"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d", w.Code)
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("unmarshal login: %v", err)
	}

	w = doJSON(r, http.MethodGet, "/api/newsletter/signups", "", login.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("authenticated listing = %d", w.Code)
	}
	var signups []domain.NewsletterSignup
	if err := json.Unmarshal(w.Body.Bytes(), &signups); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(signups) != 1 || signups[0].Email != "mum@example.com" {
		t.Fatalf("unexpected signups: %+v", signups)
	}
}

func TestRegisterRoutes_SignupWindowLimit(t *testing.T) {
	cfg := testConfig(t, "")
	cfg.NewsletterRateMax = 2
	r, _ := newRouter(t, cfg)

	for i := 0; i < 2; i++ {
		body := fmt.Sprintf(`{"email":"mum%d@example.com"}`, i)
		if w := doJSON(r, http.MethodPost, "/api/newsletter/signup", body, ""); w.Code != http.StatusCreated {
			t.Fatalf("signup %d = %d", i, w.Code)
		}
	}
	w := doJSON(r, http.MethodPost, "/api/newsletter/signup", `{"email":"late@example.com"}`, "")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after window exhausted, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestRegisterRoutes_AdminLoginNotConfigured(t *testing.T) {
	r, _ := newRouter(t, testConfig(t, "")) // no password hash

	w := doJSON(r, http.MethodPost, "/api/admin/login", `{"password":"anything"}`, "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when login not configured, got %d", w.Code)
	}
}

func TestRegisterRoutes_AppFileLifecycle(t *testing.T) {
	r, _ := newRouter(t, testConfig(t, "pw12345"))

	w := doJSON(r, http.MethodPost, "/api/admin/login", `{"password":"pw12345"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d", w.Code)
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("unmarshal login: %v", err)
	}

	// Register requires auth
	buildBody := `{"platform":"Android","fileName":"app.apk","filePath":"/files/app.apk","version":"1.0.0"}`
	if w = doJSON(r, http.MethodPost, "/api/admin/app-files", buildBody, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated register expected 401, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/api/admin/app-files", buildBody, login.Token)
	if w.Code != http.StatusCreated {
		t.Fatalf("register = %d (%s)", w.Code, w.Body.String())
	}
	var created domain.AppFile
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// Public catalog lists it
	w = doJSON(r, http.MethodGet, "/api/app-files?platform=Android", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/app-files = %d", w.Code)
	}
	var files []domain.AppFile
	if err := json.Unmarshal(w.Body.Bytes(), &files); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(files) != 1 || files[0].ID != created.ID {
		t.Fatalf("unexpected catalog: %+v", files)
	}

	// Deactivate removes it from the catalog
	w = doJSON(r, http.MethodDelete, "/api/admin/app-files/"+created.ID, "", login.Token)
	if w.Code != http.StatusNoContent {
		t.Fatalf("deactivate = %d", w.Code)
	}
	w = doJSON(r, http.MethodGet, "/api/app-files", "", "")
	if err := json.Unmarshal(w.Body.Bytes(), &files); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected empty catalog, got %+v", files)
	}
}
