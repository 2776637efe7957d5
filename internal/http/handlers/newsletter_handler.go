// Newsletter HTTP handlers.
//
// This file exposes REST endpoints for the newsletter:
//   - POST /newsletter/signup   (public, fixed-window rate limited at the router)
//   - GET  /newsletter/signups  (admin listing, behind admin auth)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mumsspace/go-site-backend/internal/mailer"
	"github.com/mumsspace/go-site-backend/internal/services"
)

// SignupRequest is the JSON payload for newsletter signup.
type SignupRequest struct {
	// Email is the address to subscribe.
	Email string `json:"email" binding:"required" example:"mum@example.com"`
}

// SignupNewsletter godoc
// @ID          signupNewsletter
// @Summary     Subscribe to the newsletter
// @Description Validates the address, stores the signup, and forwards it to the external mailing-list provider when one is configured. A provider outage leaves no local record so the caller can retry.
// @Tags        Newsletter
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SignupRequest  true  "Signup payload"
//
// @Success     201  {object}  handlers.SignupResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid or duplicate email"
// @Failure     429  {object}  handlers.ErrorResponse  "Too many attempts"
// @Failure     502  {object}  handlers.ErrorResponse  "Mailing-list provider failed"
// @Failure     503  {object}  handlers.ErrorResponse  "Provider integration not configured"
// @Router      /newsletter/signup [post]
func (h *Handlers) SignupNewsletter(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	if _, err := h.newsletterSvc.Signup(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid email address")
		case errors.Is(err, services.ErrDuplicateEmail):
			fail(c, http.StatusBadRequest, ErrCodeDuplicateEmail, "email already subscribed")
		case errors.Is(err, mailer.ErrNotConfigured):
			fail(c, http.StatusServiceUnavailable, ErrCodeNotConfigured, "newsletter service not configured")
		case errors.Is(err, mailer.ErrProviderFailure):
			fail(c, http.StatusBadGateway, ErrCodeProviderUnavailable, "mailing-list provider unavailable")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not store signup")
		}
		return
	}
	ok(c, http.StatusCreated, SignupResponse{Success: true, Message: "subscribed to the newsletter"})
}

// ListSignups godoc
// @ID          listSignups
// @Summary     List newsletter signups
// @Description Returns all recorded signups, newest first.
// @Tags        Newsletter
// @Produce     json
// @Security    AdminToken
//
// @Success     200  {array}   domain.NewsletterSignup
// @Failure     401  {object}  handlers.ErrorResponse  "Missing or invalid admin token"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /newsletter/signups [get]
func (h *Handlers) ListSignups(c *gin.Context) {
	items, err := h.newsletterSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list signups")
		return
	}
	ok(c, http.StatusOK, items)
}
