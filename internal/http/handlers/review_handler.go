// Review HTTP handlers.
//
// This file exposes REST endpoints for review resources:
//   - POST /reviews        (submit)
//   - GET  /reviews        (list, newest first, optional ?limit=)
//   - POST /reviews/reply  (admin reply, behind admin auth)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mumsspace/go-site-backend/internal/services"
	"github.com/mumsspace/go-site-backend/internal/utils"
)

// SubmitReviewRequest is the JSON payload for submitting a review.
type SubmitReviewRequest struct {
	// UserName is the display name shown next to the review (2-255 chars).
	UserName string `json:"userName" binding:"required" example:"Maria K."`
	// Rating is the star rating, 1 to 5 inclusive.
	Rating int `json:"rating" binding:"required" example:"5"`
	// ReviewText is the free-text body (10-2000 chars).
	ReviewText string `json:"reviewText" binding:"required" example:"This app helped me find my village."`
	// Verified marks the review as coming from a confirmed app user.
	Verified bool `json:"verified" example:"false"`
}

// ReplyRequest is the JSON payload for attaching an admin reply to a review.
type ReplyRequest struct {
	// ReviewID identifies the review being answered.
	ReviewID string `json:"reviewId" binding:"required" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	// AdminReply is the reply text (1-500 chars).
	AdminReply string `json:"adminReply" binding:"required" example:"Thanks for the kind words!"`
}

// SubmitReview godoc
// @ID          submitReview
// @Summary     Submit a review
// @Description Validates and stores a new review. New reviews appear first in the listing.
// @Tags        Reviews
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SubmitReviewRequest  true  "Review payload"
//
// @Success     201  {object}  domain.Review
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /reviews [post]
func (h *Handlers) SubmitReview(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	rv, err := h.reviewSvc.Submit(c.Request.Context(), req.UserName, req.Rating, req.ReviewText, req.Verified)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidUserName):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "userName must be 2-255 characters")
		case errors.Is(err, services.ErrInvalidRating):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "rating must be an integer from 1 to 5")
		case errors.Is(err, services.ErrInvalidReviewText):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "reviewText must be 10-2000 characters")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "could not store review")
		}
		return
	}
	ok(c, http.StatusCreated, rv)
}

// ListReviews godoc
// @ID          listReviews
// @Summary     List reviews
// @Description Returns reviews newest first. An empty list is a valid result.
// @Tags        Reviews
// @Produce     json
//
// @Param       limit  query  int  false  "Maximum number of reviews returned"  minimum(1)
//
// @Success     200  {array}   domain.Review
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /reviews [get]
func (h *Handlers) ListReviews(c *gin.Context) {
	limit := utils.AtoiDefault(c.Query("limit"), 0)
	if limit < 0 {
		limit = 0
	}

	items, err := h.reviewSvc.List(c.Request.Context(), limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list reviews")
		return
	}
	ok(c, http.StatusOK, items)
}

// ReplyToReview godoc
// @ID          replyToReview
// @Summary     Reply to a review
// @Description Attaches (or replaces) the admin reply on a review and stamps the reply time.
// @Tags        Reviews
// @Accept      json
// @Produce     json
// @Security    AdminToken
//
// @Param       body  body  handlers.ReplyRequest  true  "Reply payload"
//
// @Success     200  {object}  domain.Review
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing or invalid admin token"
// @Failure     404  {object}  handlers.ErrorResponse  "Review not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /reviews/reply [post]
func (h *Handlers) ReplyToReview(c *gin.Context) {
	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	rv, err := h.reviewSvc.Reply(c.Request.Context(), req.ReviewID, req.AdminReply)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidReply):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "adminReply must be 1-500 characters")
		case errors.Is(err, services.ErrReviewNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "review not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not store reply")
		}
		return
	}
	ok(c, http.StatusOK, rv)
}
