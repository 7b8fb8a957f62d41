package handlers

import (
	"net/http"

	"gamejam-portal-backend/internal/auth"
	"gamejam-portal-backend/internal/cookies"
	"gamejam-portal-backend/internal/logger"
	"gamejam-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler serves the caller's own roster under /api/team. Mutating calls and
// rebuilds write the snapshot back into the team cookie.
type TeamHandler struct {
	roster service.RosterServiceInterface
	jar    *cookies.Jar
}

// NewTeamHandler creates a new roster handler
func NewTeamHandler(roster service.RosterServiceInterface, jar *cookies.Jar) *TeamHandler {
	return &TeamHandler{
		roster: roster,
		jar:    jar,
	}
}

// RosterResponse wraps the snapshot for mutating calls
type RosterResponse struct {
	OK   bool                  `json:"ok"`
	Team *cookies.TeamSnapshot `json:"team"`
}

// GetTeam returns the roster snapshot
// @Summary Get my team
// @Description Returns the team cookie snapshot. A placeholder cookie or refresh=1 rebuilds it from the database.
// @Tags team
// @Produce json
// @Param refresh query string false "Rebuild from the database" Enums(0, 1)
// @Success 200 {object} cookies.TeamSnapshot
// @Failure 500 {object} ErrorResponse
// @Router /api/team [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	refresh := c.Query("refresh") == "1"
	snap, rebuilt, err := h.roster.Read(c, h.caller(c), h.jar.ReadTeam(c), refresh)
	if err != nil {
		respondError(c, err)
		return
	}
	if rebuilt {
		h.writeCookie(c, snap)
	}
	c.JSON(http.StatusOK, snap)
}

// PatchTeam updates the team name, the type or runs an action
// @Summary Update my team
// @Description Renames the team, switches between individual and team mode, or regenerates the invite code
// @Tags team
// @Accept json
// @Produce json
// @Param request body service.PatchTeamRequest true "Roster changes"
// @Success 200 {object} cookies.TeamSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/team [patch]
func (h *TeamHandler) PatchTeam(c *gin.Context) {
	var req service.PatchTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	snap, err := h.roster.Patch(c, h.caller(c), h.jar.ReadTeam(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeCookie(c, snap)
	c.JSON(http.StatusOK, snap)
}

// AddMember adds a teammate and optionally issues an invite link
// @Summary Add a team member
// @Description Persists the member, attaches them to the caller's team and returns the updated roster
// @Tags team
// @Accept json
// @Produce json
// @Param request body service.AddMemberRequest true "Member to add"
// @Success 200 {object} service.AddMemberResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ConflictResponse
// @Router /api/team [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	result, err := h.roster.AddMember(c, h.caller(c), h.jar.ReadTeam(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeCookie(c, result.Team)
	c.JSON(http.StatusOK, result)
}

// RemoveMember removes a member from the roster by email
// @Summary Remove a team member
// @Tags team
// @Produce json
// @Param email query string true "Member email"
// @Success 200 {object} RosterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/team [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	snap, err := h.roster.RemoveMember(c, h.caller(c), h.jar.ReadTeam(c), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeCookie(c, snap)
	c.JSON(http.StatusOK, RosterResponse{OK: true, Team: snap})
}

// caller prefers the session identity. The profile cookie email is only a hint for
// rebuilding the snapshot and never marks the caller as verified.
func (h *TeamHandler) caller(c *gin.Context) service.Caller {
	profile := h.jar.ReadProfile(c)
	if email, _ := auth.GetUserEmail(c); email != "" {
		return service.Caller{Email: cookies.NormalizeEmail(email), Profile: profile, Verified: true}
	}
	caller := service.Caller{Profile: profile}
	if profile != nil {
		caller.Email = cookies.NormalizeEmail(profile.Email)
	}
	return caller
}

func (h *TeamHandler) writeCookie(c *gin.Context, snap *cookies.TeamSnapshot) {
	if err := h.jar.WriteTeam(c, snap); err != nil {
		logger.WithContext(c).WithError(err).Warnf("could not write team cookie")
	}
}
