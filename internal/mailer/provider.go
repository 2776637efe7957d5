// Package mailer integrates the newsletter flow with an external
// mailing-list provider. The provider is modeled as a small capability
// interface so the signup service does not depend on one vendor's wire
// format, and tests can substitute a stub.
//
// The HTTP implementation targets a Mailchimp-style marketing API: the
// account's datacenter prefix selects the host, the API key goes in basic
// auth, and members are created under a list (audience) resource.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Status is the outcome of a subscribe call against the provider.
type Status int

const (
	// StatusSubscribed means the address was newly added to the list.
	StatusSubscribed Status = iota
	// StatusAlreadySubscribed means the provider already had the address.
	StatusAlreadySubscribed
)

var (
	// ErrNotConfigured is returned when any of the required provider
	// settings (API key, list ID, server prefix) is missing. The signup
	// endpoint fails closed on this rather than silently degrading.
	ErrNotConfigured = errors.New("mailing-list provider not configured")

	// ErrProviderFailure wraps an unexpected provider response or a
	// transport-level failure (outage, timeout).
	ErrProviderFailure = errors.New("mailing-list provider request failed")
)

// ListProvider is the capability the newsletter service depends on.
// A nil provider means external integration is disabled and signups are
// recorded locally only.
type ListProvider interface {
	// Subscribe adds email to the configured list. It returns
	// StatusAlreadySubscribed when the provider reports the address as an
	// existing member, ErrNotConfigured when settings are incomplete, and
	// an ErrProviderFailure-wrapped error on outages or rejections.
	Subscribe(ctx context.Context, email string) (Status, error)
}

// Config holds the provider settings consumed from the environment.
// BaseURL overrides the derived host and exists for tests.
type Config struct {
	APIKey       string
	ListID       string
	ServerPrefix string
	Timeout      time.Duration
	BaseURL      string
}

// HTTPProvider is the production ListProvider backed by net/http.
type HTTPProvider struct {
	cfg    Config
	client *http.Client
}

// NewHTTPProvider constructs an HTTPProvider. Configuration completeness is
// checked per call, not here, so a partially configured provider still
// fails closed at request time.
func NewHTTPProvider(cfg Config) *HTTPProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// ProviderFromConfig returns a provider when any mailing-list setting is
// present and nil when the integration is entirely absent. A partially
// configured provider is returned as-is, so signup requests fail closed with
// ErrNotConfigured instead of silently degrading to local-only recording.
func ProviderFromConfig(cfg Config) ListProvider {
	if strings.TrimSpace(cfg.APIKey) == "" &&
		strings.TrimSpace(cfg.ListID) == "" &&
		strings.TrimSpace(cfg.ServerPrefix) == "" {
		return nil
	}
	return NewHTTPProvider(cfg)
}

// memberRequest is the JSON payload for creating a list member.
type memberRequest struct {
	EmailAddress string `json:"email_address"`
	Status       string `json:"status"`
}

// memberError is the subset of the provider's error body we care about.
type memberError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Subscribe implements ListProvider.
func (p *HTTPProvider) Subscribe(ctx context.Context, email string) (Status, error) {
	if strings.TrimSpace(p.cfg.APIKey) == "" ||
		strings.TrimSpace(p.cfg.ListID) == "" ||
		strings.TrimSpace(p.cfg.ServerPrefix) == "" {
		return 0, ErrNotConfigured
	}

	base := p.cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.api.mailchimp.com/3.0", p.cfg.ServerPrefix)
	}
	url := fmt.Sprintf("%s/lists/%s/members", strings.TrimRight(base, "/"), p.cfg.ListID)

	body, err := json.Marshal(memberRequest{EmailAddress: email, Status: "subscribed"})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	// The provider ignores the username; the API key is the password.
	req.SetBasicAuth("anystring", p.cfg.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return StatusSubscribed, nil
	}

	// A 400 "Member Exists" is a duplicate, not a failure.
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	var perr memberError
	_ = json.Unmarshal(raw, &perr)
	if resp.StatusCode == http.StatusBadRequest && strings.EqualFold(perr.Title, "Member Exists") {
		return StatusAlreadySubscribed, nil
	}

	return 0, fmt.Errorf("%w: status %d: %s", ErrProviderFailure, resp.StatusCode, perr.Title)
}
