package models

import "time"

// Announcement is an organiser notice shown on the participant panel
type Announcement struct {
	BaseModel
	Title       string    `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Body        string    `json:"body" gorm:"type:text;not null" validate:"required"`
	Pinned      bool      `json:"pinned" gorm:"not null;default:false"`
	PublishedAt time.Time `json:"published_at" gorm:"not null;index"`
}

// TableName returns the table name for Announcement
func (Announcement) TableName() string {
	return "announcements"
}
