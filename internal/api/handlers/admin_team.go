package handlers

import (
	"net/http"

	"gamejam-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminTeamHandler handles organiser team management
type AdminTeamHandler struct {
	teams service.AdminTeamServiceInterface
}

// NewAdminTeamHandler creates a new admin team handler
func NewAdminTeamHandler(teams service.AdminTeamServiceInterface) *AdminTeamHandler {
	return &AdminTeamHandler{teams: teams}
}

// ListTeams returns teams with member counts
// @Summary List teams
// @Tags admin
// @Produce json
// @Param q query string false "Name filter"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.TeamListResponse
// @Security BearerAuth
// @Router /api/admin/teams [get]
func (h *AdminTeamHandler) ListTeams(c *gin.Context) {
	page, pageSize := pageParams(c)
	resp, err := h.teams.List(c.Query("q"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTeam returns a team with its members
// @Summary Get team
// @Tags admin
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} service.TeamDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/admin/teams/{id} [get]
func (h *AdminTeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "takım")
	if !ok {
		return
	}
	team, err := h.teams.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// MatchMember places a user into a team
// @Summary Match a participant into a team
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body service.MatchMemberRequest true "User to place"
// @Success 200 {object} service.TeamDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ConflictResponse
// @Security BearerAuth
// @Router /api/admin/teams/{id}/members [post]
func (h *AdminTeamHandler) MatchMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "takım")
	if !ok {
		return
	}
	var req service.MatchMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	team, err := h.teams.Match(c, id, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam removes a team and detaches its members
// @Summary Delete team
// @Tags admin
// @Param id path string true "Team ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ConflictResponse
// @Security BearerAuth
// @Router /api/admin/teams/{id} [delete]
func (h *AdminTeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "takım")
	if !ok {
		return
	}
	if err := h.teams.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
