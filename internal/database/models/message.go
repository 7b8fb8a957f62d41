package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a note between participants and organisers.
// A nil SenderID means it was sent on behalf of the organisers.
type Message struct {
	BaseModel
	SenderID      *uuid.UUID `json:"sender_id,omitempty" gorm:"type:uuid;index"`
	Subject       string     `json:"subject" gorm:"not null;size:200"`
	Body          string     `json:"body" gorm:"type:text;not null"`
	SenderDeleted bool       `json:"-" gorm:"not null;default:false"`

	Sender     *User              `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Recipients []MessageRecipient `json:"recipients,omitempty" gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Message
func (Message) TableName() string {
	return "messages"
}

// MessageRecipient is the per-recipient side of a message with its own read and delete state
type MessageRecipient struct {
	BaseModel
	MessageID uuid.UUID  `json:"message_id" gorm:"type:uuid;not null;uniqueIndex:idx_message_recipient"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_message_recipient;index"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	Deleted   bool       `json:"-" gorm:"not null;default:false"`

	Message *Message `json:"message,omitempty" gorm:"foreignKey:MessageID"`
}

// TableName returns the table name for MessageRecipient
func (MessageRecipient) TableName() string {
	return "message_recipients"
}
