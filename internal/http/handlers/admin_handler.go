// Admin authentication HTTP handlers.
//
// This file exposes the login/logout endpoints for the admin panel:
//   - POST /admin/login   (public; verifies the password server-side)
//   - POST /admin/logout  (behind admin auth; revokes the session)
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mumsspace/go-site-backend/internal/http/middleware"
	"github.com/mumsspace/go-site-backend/internal/services"
)

// LoginRequest is the JSON payload for admin login.
type LoginRequest struct {
	// Password is checked against the configured Argon2id hash.
	Password string `json:"password" binding:"required" example:"hunter2hunter2"`
}

// LoginResponse carries the minted session token and its expiry.
type LoginResponse struct {
	Token     string    `json:"token" example:"pFJ3pP9QxLYPz0k1Wm3qew"`
	ExpiresAt time.Time `json:"expires_at" example:"2025-01-02T15:04:05Z"`
}

// AdminLogin godoc
// @ID          adminLogin
// @Summary     Admin login
// @Description Verifies the admin password and returns a Bearer token for the admin routes. Responses never reveal whether the password or the configuration was at fault beyond the status code.
// @Tags        Admin
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object}  handlers.LoginResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid JSON body"
// @Failure     401  {object}  handlers.ErrorResponse  "Wrong password"
// @Failure     503  {object}  handlers.ErrorResponse  "Admin login not configured"
// @Router      /admin/login [post]
func (h *Handlers) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	token, expiresAt, err := h.adminSvc.Login(c.Request.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLoginNotConfigured):
			fail(c, http.StatusServiceUnavailable, ErrCodeNotConfigured, "admin login not configured")
		case errors.Is(err, services.ErrInvalidCredentials):
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not create session")
		}
		return
	}
	ok(c, http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// ValidateAdminToken adapts the admin service to middleware.TokenValidator so
// the router can guard the admin group.
func (h *Handlers) ValidateAdminToken(c *gin.Context, token string) error {
	return h.adminSvc.Validate(c.Request.Context(), token)
}

// AdminLogout godoc
// @ID          adminLogout
// @Summary     Admin logout
// @Description Revokes the session token presented in the Authorization header.
// @Tags        Admin
// @Produce     json
// @Security    AdminToken
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing or invalid admin token"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/logout [post]
func (h *Handlers) AdminLogout(c *gin.Context) {
	token := middleware.AdminToken(c)
	if err := h.adminSvc.Logout(c.Request.Context(), token); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not revoke session")
		return
	}
	noContent(c)
}
