package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gamejam-portal-backend/internal/database/models"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/logger"
	"gamejam-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchMemberRequest represents an organiser placing a solo participant into a team
type MatchMemberRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// TeamSummaryResponse is a row of the admin team listing
type TeamSummaryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Mode        models.TeamType `json:"mode"`
	InviteCode  string          `json:"invite_code,omitempty"`
	LeaderID    *uuid.UUID      `json:"leader_id,omitempty"`
	MemberCount int64           `json:"member_count"`
	CreatedAt   string          `json:"created_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamSummaryResponse `json:"teams"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// TeamMemberResponse is a member as shown to organisers
type TeamMemberResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	Age         int                `json:"age"`
	ProfileRole models.ProfileRole `json:"profile_role"`
	CanLogin    bool               `json:"can_login"`
	Source      models.UserSource  `json:"source"`
	IsLeader    bool               `json:"is_leader"`
}

// TeamDetailResponse is a team with its members
type TeamDetailResponse struct {
	TeamSummaryResponse
	Members []TeamMemberResponse `json:"members"`
}

// AdminTeamService handles organiser-side team operations
type AdminTeamService struct {
	teams      repository.TeamRepositoryInterface
	users      repository.UserRepositoryInterface
	maxMembers int
}

// NewAdminTeamService creates a new admin team service
func NewAdminTeamService(teams repository.TeamRepositoryInterface, users repository.UserRepositoryInterface, maxMembers int) *AdminTeamService {
	if maxMembers <= 0 {
		maxMembers = 4
	}
	return &AdminTeamService{teams: teams, users: users, maxMembers: maxMembers}
}

// List returns teams with member counts, newest first
func (s *AdminTeamService) List(query string, page, pageSize int) (*TeamListResponse, error) {
	limit, offset, page, pageSize := pageBounds(page, pageSize)

	rows, total, err := s.teams.GetAll(strings.TrimSpace(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]TeamSummaryResponse, len(rows))
	for i := range rows {
		teams[i] = summaryOf(&rows[i].Team, rows[i].MemberCount)
	}
	return &TeamListResponse{Teams: teams, Total: total, Page: page, PageSize: pageSize}, nil
}

// Get retrieves a team with its members
func (s *AdminTeamService) Get(id uuid.UUID) (*TeamDetailResponse, error) {
	team, err := s.teams.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return detailOf(team), nil
}

// Match attaches a team-less participant to a team, respecting capacity
func (s *AdminTeamService) Match(ctx context.Context, teamID, userID uuid.UUID) (*TeamDetailResponse, error) {
	team, err := s.teams.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.TeamID != nil {
		if *user.TeamID == teamID {
			return nil, apperrors.ErrAlreadyInTeam
		}
		return nil, apperrors.ErrInOtherTeam
	}

	if err := s.users.AttachToTeam(teamID, userID, user.ProfileRole, s.maxMembers); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTeamFull), apperrors.IsConflict(err):
			return nil, err
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to match user: %w", err)
	}

	updates := map[string]interface{}{}
	if team.Mode != models.TeamTypeTeam {
		updates["mode"] = models.TeamTypeTeam
	}
	if team.LeaderID == nil {
		updates["leader_id"] = userID
	}
	if len(updates) > 0 {
		if err := s.teams.UpdateFields(teamID, updates); err != nil {
			return nil, fmt.Errorf("failed to update team: %w", err)
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": teamID,
		"user_id": userID,
	}).Infof("%s matched into team %q", user.Email, team.Name)

	return s.Get(teamID)
}

// Delete removes a team that has no submissions, unlinking its members first
func (s *AdminTeamService) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := s.teams.CountSubmissions(id)
	if err != nil {
		return fmt.Errorf("failed to count submissions: %w", err)
	}
	if count > 0 {
		return apperrors.ErrTeamHasSubmissions
	}

	if err := s.teams.DeleteUnlinkingMembers(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}

	logger.WithContext(ctx).WithField("team_id", id).Infof("team deleted")
	return nil
}

func summaryOf(t *models.Team, memberCount int64) TeamSummaryResponse {
	out := TeamSummaryResponse{
		ID:          t.ID,
		Name:        t.Name,
		Mode:        t.Mode,
		LeaderID:    t.LeaderID,
		MemberCount: memberCount,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.InviteCode != nil {
		out.InviteCode = *t.InviteCode
	}
	return out
}

func detailOf(t *models.Team) *TeamDetailResponse {
	out := &TeamDetailResponse{
		TeamSummaryResponse: summaryOf(t, int64(len(t.Members))),
		Members:             make([]TeamMemberResponse, len(t.Members)),
	}
	for i, m := range t.Members {
		out.Members[i] = TeamMemberResponse{
			ID:          m.ID,
			Name:        m.Name,
			Email:       m.Email,
			Phone:       m.Phone,
			Age:         m.Age,
			ProfileRole: m.ProfileRole,
			CanLogin:    m.CanLogin,
			Source:      m.Source,
			IsLeader:    t.LeaderID != nil && *t.LeaderID == m.ID,
		}
	}
	return out
}
