package handlers

import (
	"net/http"

	"gamejam-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnnouncementHandler handles announcements
type AnnouncementHandler struct {
	announcements service.AnnouncementServiceInterface
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcements service.AnnouncementServiceInterface) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements}
}

// List returns published announcements, pinned first
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.AnnouncementListResponse
// @Router /api/announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	resp, err := h.announcements.List(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create publishes an announcement
// @Summary Create announcement
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} models.Announcement
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/admin/announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req service.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	a, err := h.announcements.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// Delete removes an announcement
// @Summary Delete announcement
// @Tags admin
// @Param id path string true "Announcement ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/admin/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "duyuru")
	if !ok {
		return
	}
	if err := h.announcements.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
