package repository

import (
	"time"

	"gamejam-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRepository handles database operations for messages and their recipients
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create stores the message together with its recipient rows
func (r *MessageRepository) Create(msg *models.Message) error {
	return r.db.Create(msg).Error
}

// GetByID retrieves a message with its recipients
func (r *MessageRepository) GetByID(id uuid.UUID) (*models.Message, error) {
	var msg models.Message
	err := r.db.Preload("Recipients").First(&msg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// Inbox retrieves the recipient rows of a user that were not deleted, newest first
func (r *MessageRepository) Inbox(userID uuid.UUID, limit, offset int) ([]models.MessageRecipient, int64, error) {
	var rows []models.MessageRecipient
	var total int64

	query := r.db.Model(&models.MessageRecipient{}).Where("user_id = ? AND deleted = ?", userID, false)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Preload("Message").Preload("Message.Sender").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// Outbox retrieves the messages a user sent and did not delete, newest first
func (r *MessageRepository) Outbox(senderID uuid.UUID, limit, offset int) ([]models.Message, int64, error) {
	var msgs []models.Message
	var total int64

	query := r.db.Model(&models.Message{}).Where("sender_id = ? AND sender_deleted = ?", senderID, false)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Preload("Recipients").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&msgs).Error
	if err != nil {
		return nil, 0, err
	}

	return msgs, total, nil
}

// MarkRead sets read_at once; re-reading keeps the first timestamp
func (r *MessageRepository) MarkRead(messageID, userID uuid.UUID, at time.Time) (int64, error) {
	res := r.db.Model(&models.MessageRecipient{}).
		Where("message_id = ? AND user_id = ? AND deleted = ?", messageID, userID, false).
		Update("read_at", gorm.Expr("COALESCE(read_at, ?)", at))
	return res.RowsAffected, res.Error
}

// DeleteForRecipient hides the message from the recipient's inbox only
func (r *MessageRepository) DeleteForRecipient(messageID, userID uuid.UUID) (int64, error) {
	res := r.db.Model(&models.MessageRecipient{}).
		Where("message_id = ? AND user_id = ? AND deleted = ?", messageID, userID, false).
		Update("deleted", true)
	return res.RowsAffected, res.Error
}

// DeleteForSender hides the message from the sender's outbox only
func (r *MessageRepository) DeleteForSender(messageID, senderID uuid.UUID) (int64, error) {
	res := r.db.Model(&models.Message{}).
		Where("id = ? AND sender_id = ? AND sender_deleted = ?", messageID, senderID, false).
		Update("sender_deleted", true)
	return res.RowsAffected, res.Error
}

// UnreadCount counts inbox rows without a read receipt
func (r *MessageRepository) UnreadCount(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.MessageRecipient{}).
		Where("user_id = ? AND deleted = ? AND read_at IS NULL", userID, false).
		Count(&count).Error
	return count, err
}
