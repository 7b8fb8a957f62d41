package handlers

import (
	"context"
	"net/http"

	"gamejam-portal-backend/internal/database/models"
	"gamejam-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApplicationHandler handles registration forms and their review
type ApplicationHandler struct {
	applications service.ApplicationServiceInterface
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applications service.ApplicationServiceInterface) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// Submit stores a new registration form
// @Summary Submit an application
// @Tags applications
// @Accept json
// @Produce json
// @Param request body service.SubmitApplicationRequest true "Registration form"
// @Success 201 {object} service.ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req service.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	app, err := h.applications.Submit(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// List returns applications, newest first
// @Summary List applications
// @Tags admin
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ApplicationListResponse
// @Security BearerAuth
// @Router /api/admin/applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	resp, err := h.applications.List(models.ApplicationStatus(c.Query("status")), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns one application
// @Summary Get application
// @Tags admin
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} service.ApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/admin/applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "başvuru")
	if !ok {
		return
	}
	app, err := h.applications.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Approve creates the accounts for an application and mails credentials
// @Summary Approve application
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body service.ReviewApplicationRequest false "Review note"
// @Success 200 {object} service.ApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ConflictResponse
// @Security BearerAuth
// @Router /api/admin/applications/{id}/approve [post]
func (h *ApplicationHandler) Approve(c *gin.Context) {
	h.review(c, h.applications.Approve)
}

// Reject closes an application without creating accounts
// @Summary Reject application
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body service.ReviewApplicationRequest false "Review note"
// @Success 200 {object} service.ApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ConflictResponse
// @Security BearerAuth
// @Router /api/admin/applications/{id}/reject [post]
func (h *ApplicationHandler) Reject(c *gin.Context) {
	h.review(c, h.applications.Reject)
}

func (h *ApplicationHandler) review(c *gin.Context, fn func(ctx context.Context, id uuid.UUID, note string) (*service.ApplicationResponse, error)) {
	id, ok := parseIDParam(c, "id", "başvuru")
	if !ok {
		return
	}

	// the note is optional so an empty body is accepted
	var req service.ReviewApplicationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidBody(c)
			return
		}
	}

	app, err := fn(c, id, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
