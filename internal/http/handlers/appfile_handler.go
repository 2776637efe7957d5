// App build catalog HTTP handlers.
//
// This file exposes REST endpoints for downloadable app builds:
//   - GET    /app-files              (public catalog of active builds)
//   - POST   /admin/app-files       (register a build, behind admin auth)
//   - DELETE /admin/app-files/:id   (deactivate a build, behind admin auth)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mumsspace/go-site-backend/internal/services"
)

// RegisterAppFileRequest is the JSON payload for registering a build.
type RegisterAppFileRequest struct {
	// Platform the build targets (e.g. "iPhone", "Android", "PC").
	Platform string `json:"platform" binding:"required" example:"Android"`
	// FileName is the artifact name shown to users.
	FileName string `json:"fileName" binding:"required" example:"mums-space-1.4.2.apk"`
	// FilePath is where the artifact is served from.
	FilePath string `json:"filePath" binding:"required" example:"/files/mums-space-1.4.2.apk"`
	// Version is the human-readable build version.
	Version string `json:"version" binding:"required" example:"1.4.2"`
	// IsActive publishes the build immediately; omitted means active.
	IsActive *bool `json:"isActive" example:"true"`
}

// ListAppFiles godoc
// @ID          listAppFiles
// @Summary     List active app builds
// @Description Returns the currently downloadable builds, optionally filtered by platform.
// @Tags        AppFiles
// @Produce     json
//
// @Param       platform  query  string  false  "Platform filter"  example(Android)
//
// @Success     200  {array}   domain.AppFile
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /app-files [get]
func (h *Handlers) ListAppFiles(c *gin.Context) {
	items, err := h.appFileSvc.ListActive(c.Request.Context(), c.Query("platform"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list app files")
		return
	}
	ok(c, http.StatusOK, items)
}

// RegisterAppFile godoc
// @ID          registerAppFile
// @Summary     Register an app build
// @Description Records a new build artifact. Registering an active build retires the platform's previous active one.
// @Tags        AppFiles
// @Accept      json
// @Produce     json
// @Security    AdminToken
//
// @Param       body  body  handlers.RegisterAppFileRequest  true  "Build payload"
//
// @Success     201  {object}  domain.AppFile
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing or invalid admin token"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/app-files [post]
func (h *Handlers) RegisterAppFile(c *gin.Context) {
	var req RegisterAppFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	af, err := h.appFileSvc.Register(c.Request.Context(), req.Platform, req.FileName, req.FilePath, req.Version, isActive)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAppFile) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "platform, fileName, filePath, and version are required")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "could not register app file")
		return
	}
	ok(c, http.StatusCreated, af)
}

// DeactivateAppFile godoc
// @ID          deactivateAppFile
// @Summary     Deactivate an app build
// @Description Removes a build from the public catalog without deleting its record.
// @Tags        AppFiles
// @Produce     json
// @Security    AdminToken
//
// @Param       id  path  string  true  "App file ID"  format(uuid)
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing or invalid admin token"
// @Failure     404  {object}  handlers.ErrorResponse  "App file not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/app-files/{id} [delete]
func (h *Handlers) DeactivateAppFile(c *gin.Context) {
	if err := h.appFileSvc.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrAppFileNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "app file not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not deactivate app file")
		return
	}
	noContent(c)
}
