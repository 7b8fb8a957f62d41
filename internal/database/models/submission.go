package models

import (
	"github.com/google/uuid"
)

// Submission is the game a team or a solo participant hands in.
// Exactly one of TeamID and UserID is set.
type Submission struct {
	BaseModel
	TeamID      *uuid.UUID       `json:"team_id,omitempty" gorm:"type:uuid;uniqueIndex"`
	UserID      *uuid.UUID       `json:"user_id,omitempty" gorm:"type:uuid;uniqueIndex"`
	Title       string           `json:"title" gorm:"not null;size:120"`
	Slug        string           `json:"slug" gorm:"not null;size:140;uniqueIndex"`
	Description string           `json:"description" gorm:"type:text"`
	RepoURL     string           `json:"repo_url" gorm:"size:500"`
	BuildURL    string           `json:"build_url" gorm:"size:500"`
	VideoURL    string           `json:"video_url" gorm:"size:500"`
	Status      SubmissionStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	ReviewScore *int             `json:"review_score,omitempty"`
	ReviewNote  string           `json:"review_note" gorm:"size:1000"`

	Tags []Tag `json:"tags" gorm:"many2many:submission_tags"`
}

// TableName returns the table name for Submission
func (Submission) TableName() string {
	return "submissions"
}

// Tag labels submissions, e.g. engine or genre
type Tag struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:40;uniqueIndex"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
