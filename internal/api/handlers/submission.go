package handlers

import (
	"net/http"

	"gamejam-portal-backend/internal/database/models"
	"gamejam-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler handles game submissions
type SubmissionHandler struct {
	submissions service.SubmissionServiceInterface
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissions service.SubmissionServiceInterface) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// GetMine returns the caller's (or their team's) submission
// @Summary Get my submission
// @Tags submissions
// @Produce json
// @Success 200 {object} service.SubmissionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/submissions/mine [get]
func (h *SubmissionHandler) GetMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	sub, err := h.submissions.Mine(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// PutMine creates or updates the caller's submission
// @Summary Save my submission
// @Description Saves a draft, or submits it when submit is true. Reviewed submissions are locked.
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body service.UpsertSubmissionRequest true "Submission"
// @Success 200 {object} service.SubmissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ConflictResponse
// @Security BearerAuth
// @Router /api/submissions/mine [put]
func (h *SubmissionHandler) PutMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.UpsertSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	sub, err := h.submissions.Upsert(c, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// List returns submissions for organisers
// @Summary List submissions
// @Tags admin
// @Produce json
// @Param status query string false "Filter by status" Enums(draft, submitted, reviewed)
// @Param tag query string false "Filter by tag"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.SubmissionListResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/admin/submissions [get]
func (h *SubmissionHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	resp, err := h.submissions.List(models.SubmissionStatus(c.Query("status")), c.Query("tag"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Review scores a submitted game
// @Summary Review submission
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param request body service.ReviewSubmissionRequest true "Score and note"
// @Success 200 {object} service.SubmissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/admin/submissions/{id}/review [post]
func (h *SubmissionHandler) Review(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "proje")
	if !ok {
		return
	}
	var req service.ReviewSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	sub, err := h.submissions.Review(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}
