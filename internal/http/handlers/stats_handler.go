// Download counter HTTP handlers.
//
// This file exposes REST endpoints for the per-platform download counters:
//   - GET  /download-stats        (all counters)
//   - POST /download/:platform    (record one download)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mumsspace/go-site-backend/internal/services"
)

// GetDownloadStats godoc
// @ID          getDownloadStats
// @Summary     List download counters
// @Description Returns the download counter for every known platform, including zero-count ones.
// @Tags        Downloads
// @Produce     json
//
// @Success     200  {array}   domain.DownloadStat
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /download-stats [get]
func (h *Handlers) GetDownloadStats(c *gin.Context) {
	stats, err := h.statsSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list download stats")
		return
	}
	ok(c, http.StatusOK, stats)
}

// RecordDownload godoc
// @ID          recordDownload
// @Summary     Record a download
// @Description Increments the counter for a platform, creating it on its first download. Platform names are case-sensitive identifiers (e.g. "iPhone", "Android", "PC").
// @Tags        Downloads
// @Produce     json
//
// @Param       platform  path  string  true  "Platform identifier"  example(Android)
//
// @Success     200  {object}  domain.DownloadStat
// @Failure     400  {object}  handlers.ErrorResponse  "Missing platform"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /download/{platform} [post]
func (h *Handlers) RecordDownload(c *gin.Context) {
	st, err := h.statsSvc.Record(c.Request.Context(), c.Param("platform"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidPlatform) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "platform must not be empty")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not record download")
		return
	}
	ok(c, http.StatusOK, st)
}
