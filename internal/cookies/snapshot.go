package cookies

import (
	"gamejam-portal-backend/internal/database/models"
)

// DefaultTeamName is used whenever a rename leaves the name empty
const DefaultTeamName = "Takımım"

// SnapshotMember is one roster entry in the team cookie
type SnapshotMember struct {
	Name     string              `json:"name"`
	Email    string              `json:"email"`
	Phone    string              `json:"phone"`
	Age      int                 `json:"age"`
	Role     models.ProfileRole  `json:"role"`
	Status   models.MemberStatus `json:"status"`
	IsLeader bool                `json:"isLeader"`
}

// TeamSnapshot is the denormalized roster kept in the team cookie.
// It is a cache of relational state and never used for authorization.
type TeamSnapshot struct {
	Type       models.TeamType  `json:"type"`
	TeamName   string           `json:"teamName"`
	InviteCode string           `json:"inviteCode"`
	Members    []SnapshotMember `json:"members"`
}

// IsPlaceholder reports whether the snapshot must be rebuilt from the database
func IsPlaceholder(snap *TeamSnapshot) bool {
	if snap == nil || snap.TeamName == "" || len(snap.Members) == 0 {
		return true
	}
	for _, m := range snap.Members {
		if m.IsLeader && NormalizeEmail(m.Email) == PlaceholderLeaderEmail {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can mutate without touching the input
func (s *TeamSnapshot) Clone() *TeamSnapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Members = append([]SnapshotMember(nil), s.Members...)
	return &out
}

// Leader returns the flagged leader, or nil
func (s *TeamSnapshot) Leader() *SnapshotMember {
	for i := range s.Members {
		if s.Members[i].IsLeader {
			return &s.Members[i]
		}
	}
	return nil
}

// IndexOf finds a member by email, case-insensitively. Returns -1 if absent.
func (s *TeamSnapshot) IndexOf(email string) int {
	email = NormalizeEmail(email)
	for i, m := range s.Members {
		if NormalizeEmail(m.Email) == email {
			return i
		}
	}
	return -1
}

// HasEmail reports whether a member with the email is already listed
func (s *TeamSnapshot) HasEmail(email string) bool {
	return s.IndexOf(email) >= 0
}

// Remove drops the member at index i
func (s *TeamSnapshot) Remove(i int) {
	s.Members = append(s.Members[:i], s.Members[i+1:]...)
}

// KeepLeaderOnly turns the snapshot into an individual entry holding only the leader
func (s *TeamSnapshot) KeepLeaderOnly() {
	kept := make([]SnapshotMember, 0, 1)
	if leader := s.Leader(); leader != nil {
		kept = append(kept, *leader)
	}
	s.Members = kept
	s.Type = models.TeamTypeIndividual
}

// FromProfile builds the bootstrap individual snapshot for a caller with no database row
func FromProfile(p *Profile) *TeamSnapshot {
	snap := &TeamSnapshot{
		Type:     models.TeamTypeIndividual,
		TeamName: DefaultTeamName,
		Members:  []SnapshotMember{},
	}
	if p == nil || p.Email == "" {
		return snap
	}
	snap.Members = append(snap.Members, SnapshotMember{
		Name:     p.Name,
		Email:    NormalizeEmail(p.Email),
		Phone:    p.Phone,
		Age:      p.Age,
		Role:     p.Role,
		Status:   models.MemberStatusActive,
		IsLeader: true,
	})
	return snap
}
