package models

import (
	"github.com/google/uuid"
)

// Team is a jam team of up to four participants, one of them the leader
type Team struct {
	BaseModel
	Name       string     `json:"name" gorm:"size:64;not null" validate:"required,max=64"`
	Mode       TeamType   `json:"mode" gorm:"type:varchar(20);not null;default:'team'"`
	InviteCode *string    `json:"invite_code,omitempty" gorm:"size:16;uniqueIndex"`
	LeaderID   *uuid.UUID `json:"leader_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Members     []User       `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	Submissions []Submission `json:"submissions,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamSummary is a team row with its member count, used by the admin listing
type TeamSummary struct {
	Team
	MemberCount int64 `json:"member_count"`
}
