package models

import (
	"time"

	"github.com/google/uuid"
)

// Teammate is one extra person listed on a team application
type Teammate struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Phone string      `json:"phone"`
	Age   int         `json:"age"`
	Role  ProfileRole `json:"role"`
}

// Application is a public registration form waiting for organiser review
type Application struct {
	BaseModel
	Name        string            `json:"name" gorm:"not null;size:100"`
	Email       string            `json:"email" gorm:"not null;size:255;index"`
	Phone       string            `json:"phone" gorm:"size:20"`
	Age         int               `json:"age"`
	ProfileRole ProfileRole       `json:"profile_role" gorm:"type:varchar(20);not null"`
	Mode        TeamType          `json:"mode" gorm:"type:varchar(20);not null;default:'individual'"`
	TeamName    string            `json:"team_name" gorm:"size:64"`
	Teammates   []Teammate        `json:"teammates" gorm:"type:jsonb;serializer:json"`
	Motivation  string            `json:"motivation" gorm:"type:text"`
	Status      ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ReviewedAt  *time.Time        `json:"reviewed_at,omitempty"`
	ReviewNote  string            `json:"review_note" gorm:"size:500"`
	UserID      *uuid.UUID        `json:"user_id,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for Application
func (Application) TableName() string {
	return "applications"
}
