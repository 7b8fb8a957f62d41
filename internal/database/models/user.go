package models

import (
	"github.com/google/uuid"
)

// User is a participant or organiser account.
// A nil PasswordHash means the account was never activated.
type User struct {
	BaseModel
	Email        string      `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name         string      `json:"name" gorm:"not null;size:100" validate:"required,min=3,max=100"`
	Phone        string      `json:"phone" gorm:"size:20"`
	Age          int         `json:"age"`
	ProfileRole  ProfileRole `json:"profile_role" gorm:"type:varchar(20);not null;default:'developer'"`
	CanLogin     bool        `json:"can_login" gorm:"not null;default:false"`
	TeamID       *uuid.UUID  `json:"team_id,omitempty" gorm:"type:uuid;index"`
	PasswordHash *string     `json:"-" gorm:"size:255"`
	Source       UserSource  `json:"source" gorm:"type:varchar(20);not null;default:'form'"`
	IsAdmin      bool        `json:"is_admin" gorm:"not null;default:false"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
