package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gamejam-portal-backend/internal/cookies"
	"gamejam-portal-backend/internal/database/models"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/logger"
	"gamejam-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roster actions accepted by PATCH and POST /api/team
const (
	ActionAddMember    = "add_member"
	ActionRegenCode    = "regen_code"
	ActionToIndividual = "to_individual"
)

const (
	inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	inviteCodeLength   = 8
	maxTeamNameRunes   = 64
)

// Caller identifies who is acting on the roster. Email comes from the session
// when there is one, otherwise from the profile cookie.
type Caller struct {
	Email   string
	Profile *cookies.Profile
	// Verified is set when Email comes from the session. Only verified
	// callers may change database rows; the profile cookie is client writable.
	Verified bool
}

// PatchTeamRequest represents a partial update of the roster basics
type PatchTeamRequest struct {
	TeamName *string          `json:"teamName,omitempty"`
	Type     *models.TeamType `json:"type,omitempty" swaggertype:"string" enums:"individual,team"`
	Action   *string          `json:"action,omitempty" enums:"regen_code,to_individual"`
}

// MemberInput is the member being added to the roster
type MemberInput struct {
	Name  string             `json:"name" validate:"required,min=3,max=100"`
	Email string             `json:"email" validate:"required,max=255,jamemail"`
	Phone string             `json:"phone" validate:"required,jamphone"`
	Age   int                `json:"age" validate:"min=14,max=120"`
	Role  models.ProfileRole `json:"role" validate:"required,jamrole" swaggertype:"string"`
}

// AddMemberRequest represents the POST /api/team body
type AddMemberRequest struct {
	Action     string      `json:"action"`
	SendInvite bool        `json:"sendInvite"`
	Member     MemberInput `json:"member"`
}

// AddMemberResult is returned after a member was added
type AddMemberResult struct {
	OK             bool                  `json:"ok"`
	Team           *cookies.TeamSnapshot `json:"team"`
	InviteResetURL string                `json:"inviteResetUrl,omitempty"`
}

// RosterService keeps the team cookie snapshot in step with the users and teams tables.
// The database is the source of truth; the snapshot can always be rebuilt from it.
type RosterService struct {
	users      repository.UserRepositoryInterface
	teams      repository.TeamRepositoryInterface
	invites    InviteServiceInterface
	validator  *validator.Validate
	maxMembers int
}

// NewRosterService creates a new roster service
func NewRosterService(users repository.UserRepositoryInterface, teams repository.TeamRepositoryInterface, invites InviteServiceInterface, validator *validator.Validate, maxMembers int) *RosterService {
	if maxMembers <= 0 {
		maxMembers = 4
	}
	return &RosterService{
		users:      users,
		teams:      teams,
		invites:    invites,
		validator:  validator,
		maxMembers: maxMembers,
	}
}

// NormalizeTeamName trims the name, caps it at 64 characters and falls back to the default name
func NormalizeTeamName(name string) string {
	name = strings.TrimSpace(name)
	if runes := []rune(name); len(runes) > maxTeamNameRunes {
		name = strings.TrimSpace(string(runes[:maxTeamNameRunes]))
	}
	if name == "" {
		return cookies.DefaultTeamName
	}
	return name
}

// NewInviteCode returns a random 8 character code from A-Z and 0-9
func NewInviteCode() (string, error) {
	return randomString(inviteCodeAlphabet, inviteCodeLength)
}

// DeriveStatus computes the roster status of a user.
// hasLiveToken reports whether an unused, unexpired invite token exists.
func DeriveStatus(user *models.User, hasLiveToken bool) models.MemberStatus {
	switch {
	case user.CanLogin:
		return models.MemberStatusActive
	case hasLiveToken:
		return models.MemberStatusInvited
	case user.Source == models.UserSourceForm:
		return models.MemberStatusFormApplied
	default:
		return models.MemberStatusAdminAdded
	}
}

// Read returns the snapshot to serve. When the given snapshot is a placeholder or
// refresh is set, it is rebuilt from the database and rebuilt is true.
func (s *RosterService) Read(ctx context.Context, caller Caller, snap *cookies.TeamSnapshot, refresh bool) (*cookies.TeamSnapshot, bool, error) {
	if !refresh && !cookies.IsPlaceholder(snap) {
		return snap, false, nil
	}
	rebuilt, err := s.Rebuild(ctx, caller)
	if err != nil {
		return nil, false, err
	}
	return rebuilt, true, nil
}

// Rebuild derives the snapshot from the caller's user row, team, members and live tokens
func (s *RosterService) Rebuild(ctx context.Context, caller Caller) (*cookies.TeamSnapshot, error) {
	email := cookies.NormalizeEmail(caller.Email)
	if email == "" {
		return cookies.FromProfile(caller.Profile), nil
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cookies.FromProfile(caller.Profile), nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if user.TeamID == nil {
		return s.individualSnapshot(user), nil
	}

	team, err := s.teams.GetWithMembers(*user.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.individualSnapshot(user), nil
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(team.Members))
	for _, m := range team.Members {
		if !m.CanLogin {
			ids = append(ids, m.ID)
		}
	}
	live, err := s.invites.LiveTokenUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	leaderID := user.ID
	if team.LeaderID != nil && containsUser(team.Members, *team.LeaderID) {
		leaderID = *team.LeaderID
	}

	snap := &cookies.TeamSnapshot{
		Type:     team.Mode,
		TeamName: NormalizeTeamName(team.Name),
		Members:  make([]cookies.SnapshotMember, 0, len(team.Members)),
	}
	if snap.Type == "" {
		snap.Type = models.TeamTypeTeam
	}
	if team.InviteCode != nil {
		snap.InviteCode = *team.InviteCode
	}

	// leader first, then everyone else in join order
	for i := range team.Members {
		if team.Members[i].ID == leaderID {
			snap.Members = append(snap.Members, memberFromUser(&team.Members[i], live[leaderID], true))
		}
	}
	for i := range team.Members {
		m := &team.Members[i]
		if m.ID != leaderID {
			snap.Members = append(snap.Members, memberFromUser(m, live[m.ID], false))
		}
	}
	return snap, nil
}

// Patch applies a rename, a type switch or one of the regen_code / to_individual actions.
// Database mirroring is best effort: failures are logged and the new snapshot is still returned.
func (s *RosterService) Patch(ctx context.Context, caller Caller, snap *cookies.TeamSnapshot, req *PatchTeamRequest) (*cookies.TeamSnapshot, error) {
	if req.Type != nil && !req.Type.IsValid() {
		return nil, apperrors.ErrInvalidTeamType
	}
	if req.Action != nil && *req.Action != ActionRegenCode && *req.Action != ActionToIndividual {
		return nil, apperrors.ErrInvalidAction
	}

	user, err := s.syncTarget(ctx, caller)
	if err != nil {
		return nil, err
	}
	next, err := s.current(ctx, caller, snap)
	if err != nil {
		return nil, err
	}
	prevCode := next.InviteCode

	if req.TeamName != nil {
		next.TeamName = NormalizeTeamName(*req.TeamName)
	}
	if req.Type != nil {
		next.Type = *req.Type
		if next.Type == models.TeamTypeTeam && next.InviteCode == "" {
			if next.InviteCode, err = NewInviteCode(); err != nil {
				return nil, fmt.Errorf("failed to generate invite code: %w", err)
			}
		}
	}
	if req.Action != nil {
		switch *req.Action {
		case ActionRegenCode:
			code, err := s.freshInviteCode(prevCode)
			if err != nil {
				return nil, err
			}
			next.InviteCode = code
		case ActionToIndividual:
			next.KeepLeaderOnly()
		}
	}

	if user != nil {
		s.syncPatch(ctx, user, next, req, prevCode != next.InviteCode)
	}
	return next, nil
}

// AddMember validates the new member, attaches or creates the user under the caller's
// team and optionally issues an invite token. Database steps are strict: any failure
// aborts before the snapshot changes.
func (s *RosterService) AddMember(ctx context.Context, caller Caller, snap *cookies.TeamSnapshot, req *AddMemberRequest) (*AddMemberResult, error) {
	if req.Action != ActionAddMember {
		return nil, apperrors.ErrInvalidAction
	}

	member := req.Member
	member.Name = strings.TrimSpace(member.Name)
	member.Email = cookies.NormalizeEmail(member.Email)
	member.Phone = strings.TrimSpace(member.Phone)
	if err := validateStruct(s.validator, &member); err != nil {
		return nil, err
	}

	next, err := s.current(ctx, caller, snap)
	if err != nil {
		return nil, err
	}
	if next.Type != models.TeamTypeTeam {
		return nil, apperrors.ErrNotTeamMode
	}
	if next.HasEmail(member.Email) {
		return nil, apperrors.ErrDuplicateInRoster
	}
	if len(next.Members) >= s.maxMembers {
		return nil, s.teamFull()
	}

	if !caller.Verified || cookies.NormalizeEmail(caller.Email) == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	leader, err := s.users.GetByEmail(caller.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}

	teamID, err := s.ensureTeam(ctx, leader, next)
	if err != nil {
		return nil, err
	}

	target, err := s.users.GetByEmail(member.Email)
	switch {
	case err == nil:
		if target.TeamID != nil {
			if *target.TeamID == teamID {
				return nil, apperrors.ErrAlreadyInTeam
			}
			return nil, apperrors.ErrInOtherTeam
		}
		if err := s.users.AttachToTeam(teamID, target.ID, member.Role, s.maxMembers); err != nil {
			return nil, s.mapCapacity(err)
		}
		target.TeamID = &teamID
		target.ProfileRole = member.Role
	case errors.Is(err, gorm.ErrRecordNotFound):
		target = &models.User{
			Email:       member.Email,
			Name:        member.Name,
			Phone:       member.Phone,
			Age:         member.Age,
			ProfileRole: member.Role,
			CanLogin:    false,
			TeamID:      &teamID,
			Source:      models.UserSourceTeam,
		}
		if err := s.users.CreateInTeam(target, s.maxMembers); err != nil {
			return nil, s.mapCapacity(err)
		}
	default:
		return nil, fmt.Errorf("failed to look up member: %w", err)
	}

	result := &AddMemberResult{OK: true}
	hasLive := false
	if !target.CanLogin {
		if req.SendInvite {
			raw, _, err := s.invites.Issue(ctx, target.ID)
			if err != nil {
				return nil, err
			}
			result.InviteResetURL = s.invites.ResetURL(raw)
			hasLive = true
			logger.WithContext(ctx).WithField("member", target.Email).Infof("invite link created: %s", result.InviteResetURL)
		} else if hasLive, err = s.invites.HasLiveToken(ctx, target.ID); err != nil {
			return nil, err
		}
	}

	next.Members = append(next.Members, cookies.SnapshotMember{
		Name:   member.Name,
		Email:  member.Email,
		Phone:  member.Phone,
		Age:    member.Age,
		Role:   member.Role,
		Status: DeriveStatus(target, hasLive),
	})
	result.Team = next
	return result, nil
}

// RemoveMember drops a member by email. Removing the leader converts the
// team back to individual and detaches everyone else.
func (s *RosterService) RemoveMember(ctx context.Context, caller Caller, snap *cookies.TeamSnapshot, email string) (*cookies.TeamSnapshot, error) {
	email = cookies.NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}

	user, err := s.syncTarget(ctx, caller)
	if err != nil {
		return nil, err
	}
	next, err := s.current(ctx, caller, snap)
	if err != nil {
		return nil, err
	}

	if leader := next.Leader(); leader != nil && cookies.NormalizeEmail(leader.Email) == email {
		next.KeepLeaderOnly()
		if user != nil {
			s.syncToIndividual(ctx, user)
		}
		return next, nil
	}

	i := next.IndexOf(email)
	if i < 0 {
		return nil, apperrors.ErrMemberNotFound
	}
	next.Remove(i)

	onlyLeader := len(next.Members) == 1 && next.Members[0].IsLeader
	if onlyLeader {
		next.Type = models.TeamTypeIndividual
	}
	if user != nil {
		s.syncRemove(ctx, user, email, onlyLeader)
	}
	return next, nil
}

// current returns a mutable copy of the snapshot, rebuilding it first when it is a placeholder
func (s *RosterService) current(ctx context.Context, caller Caller, snap *cookies.TeamSnapshot) (*cookies.TeamSnapshot, error) {
	if cookies.IsPlaceholder(snap) {
		return s.Rebuild(ctx, caller)
	}
	return snap.Clone(), nil
}

// ensureTeam returns the leader's team, creating it from the snapshot when the leader has none.
// A caller who belongs to a team led by someone else gets ErrNotTeamLeader.
func (s *RosterService) ensureTeam(ctx context.Context, leader *models.User, snap *cookies.TeamSnapshot) (uuid.UUID, error) {
	if leader.TeamID != nil {
		team, err := s.teams.GetByID(*leader.TeamID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to load team: %w", err)
		}
		if team.LeaderID != nil && *team.LeaderID != leader.ID {
			return uuid.Nil, apperrors.ErrNotTeamLeader
		}
		return team.ID, nil
	}
	if snap.InviteCode == "" {
		code, err := NewInviteCode()
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to generate invite code: %w", err)
		}
		snap.InviteCode = code
	}
	code := snap.InviteCode
	team := &models.Team{
		Name:       NormalizeTeamName(snap.TeamName),
		Mode:       models.TeamTypeTeam,
		InviteCode: &code,
	}
	if err := s.teams.CreateWithLeader(team, leader.ID); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create team: %w", err)
	}
	leader.TeamID = &team.ID
	logger.WithContext(ctx).WithField("team_id", team.ID).Infof("team %q created for %s", team.Name, leader.Email)
	return team.ID, nil
}

// syncPatch mirrors a patch into the database. Errors are logged, never returned.
func (s *RosterService) syncPatch(ctx context.Context, user *models.User, next *cookies.TeamSnapshot, req *PatchTeamRequest, codeChanged bool) {
	log := logger.WithContext(ctx)

	if user.TeamID == nil {
		if req.Type != nil && next.Type == models.TeamTypeTeam {
			code := next.InviteCode
			team := &models.Team{Name: next.TeamName, Mode: models.TeamTypeTeam, InviteCode: &code}
			if err := s.teams.CreateWithLeader(team, user.ID); err != nil {
				log.WithError(err).Warnf("could not create team for %s", user.Email)
			}
		}
		return
	}

	updates := map[string]interface{}{}
	if req.TeamName != nil {
		updates["name"] = next.TeamName
	}
	if req.Type != nil || (req.Action != nil && *req.Action == ActionToIndividual) {
		updates["mode"] = next.Type
	}
	if codeChanged {
		updates["invite_code"] = next.InviteCode
	}
	if len(updates) > 0 {
		if err := s.teams.UpdateFields(*user.TeamID, updates); err != nil {
			log.WithError(err).Warnf("could not update team %s", user.TeamID)
		}
	}

	if req.Action != nil && *req.Action == ActionToIndividual {
		if _, err := s.users.DetachAllExcept(*user.TeamID, user.ID); err != nil {
			log.WithError(err).Warnf("could not detach members of team %s", user.TeamID)
		}
	}
}

// syncToIndividual detaches everyone but the leader and flips the team mode. Best effort.
func (s *RosterService) syncToIndividual(ctx context.Context, user *models.User) {
	log := logger.WithContext(ctx)
	if user.TeamID == nil {
		return
	}
	if _, err := s.users.DetachAllExcept(*user.TeamID, user.ID); err != nil {
		log.WithError(err).Warnf("could not detach members of team %s", user.TeamID)
	}
	if err := s.teams.UpdateFields(*user.TeamID, map[string]interface{}{"mode": models.TeamTypeIndividual}); err != nil {
		log.WithError(err).Warnf("could not update team %s", user.TeamID)
	}
}

// syncRemove detaches a single member. Best effort.
func (s *RosterService) syncRemove(ctx context.Context, user *models.User, email string, onlyLeader bool) {
	log := logger.WithContext(ctx)
	if user.TeamID == nil {
		return
	}
	n, err := s.users.DetachFromTeam(*user.TeamID, email)
	if err != nil {
		log.WithError(err).Warnf("could not detach %s from team %s", email, user.TeamID)
	} else if n == 0 {
		log.Debugf("%s was not linked to team %s", email, user.TeamID)
	}
	if onlyLeader {
		if err := s.teams.UpdateFields(*user.TeamID, map[string]interface{}{"mode": models.TeamTypeIndividual}); err != nil {
			log.WithError(err).Warnf("could not update team %s", user.TeamID)
		}
	}
}

// syncTarget returns the user whose team a roster change is mirrored into. A nil user
// keeps the change in the cookie only. Members of a team led by someone else get
// ErrNotTeamLeader.
func (s *RosterService) syncTarget(ctx context.Context, caller Caller) (*models.User, error) {
	if !caller.Verified || cookies.NormalizeEmail(caller.Email) == "" {
		return nil, nil
	}
	log := logger.WithContext(ctx)
	user, err := s.users.GetByEmail(caller.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithError(err).Warnf("could not load %s for roster sync", caller.Email)
		}
		return nil, nil
	}
	if user.TeamID == nil {
		return user, nil
	}
	team, err := s.teams.GetByID(*user.TeamID)
	if err != nil {
		log.WithError(err).Warnf("could not load team %s for roster sync", user.TeamID)
		return nil, nil
	}
	if team.LeaderID != nil && *team.LeaderID != user.ID {
		return nil, apperrors.ErrNotTeamLeader
	}
	return user, nil
}

func (s *RosterService) freshInviteCode(prev string) (string, error) {
	for {
		code, err := NewInviteCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate invite code: %w", err)
		}
		if code != prev {
			return code, nil
		}
	}
}

func (s *RosterService) teamFull() error {
	if s.maxMembers == 4 {
		return apperrors.ErrTeamFull
	}
	return apperrors.NewValidationError("members", fmt.Sprintf("Maksimum %d kişi", s.maxMembers))
}

// mapCapacity converts repository errors from attach/create into API errors
func (s *RosterService) mapCapacity(err error) error {
	switch {
	case errors.Is(err, apperrors.ErrTeamFull):
		return s.teamFull()
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrTeamNotFound
	case apperrors.IsConflict(err), apperrors.IsAlreadyExists(err):
		return err
	default:
		return fmt.Errorf("failed to add member: %w", err)
	}
}

func (s *RosterService) individualSnapshot(user *models.User) *cookies.TeamSnapshot {
	return &cookies.TeamSnapshot{
		Type:     models.TeamTypeIndividual,
		TeamName: cookies.DefaultTeamName,
		Members:  []cookies.SnapshotMember{memberFromUser(user, false, true)},
	}
}

func memberFromUser(u *models.User, hasLiveToken, leader bool) cookies.SnapshotMember {
	return cookies.SnapshotMember{
		Name:     u.Name,
		Email:    cookies.NormalizeEmail(u.Email),
		Phone:    u.Phone,
		Age:      u.Age,
		Role:     u.ProfileRole,
		Status:   DeriveStatus(u, hasLiveToken),
		IsLeader: leader,
	}
}

func containsUser(users []models.User, id uuid.UUID) bool {
	for _, u := range users {
		if u.ID == id {
			return true
		}
	}
	return false
}
