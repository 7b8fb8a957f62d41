package repository

import (
	"time"

	"gamejam-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordResetTokenRepository handles database operations for reset and invite tokens
type PasswordResetTokenRepository struct {
	db *gorm.DB
}

// NewPasswordResetTokenRepository creates a new token repository
func NewPasswordResetTokenRepository(db *gorm.DB) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{db: db}
}

// ReplaceForUser deletes every existing token of token.UserID and inserts token,
// leaving at most one usable token per user
func (r *PasswordResetTokenRepository) ReplaceForUser(token *models.PasswordResetToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).Delete(&models.PasswordResetToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

// GetByHash retrieves a token by its SHA-256 hex digest
func (r *PasswordResetTokenRepository) GetByHash(hash string) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	err := r.db.First(&token, "token_hash = ?", hash).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// LiveUserIDs returns the subset of userIDs holding an unused, unexpired token
func (r *PasswordResetTokenRepository) LiveUserIDs(userIDs []uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if len(userIDs) == 0 {
		return ids, nil
	}
	err := r.db.Model(&models.PasswordResetToken{}).
		Distinct("user_id").
		Where("user_id IN ? AND used_at IS NULL AND expires_at > ?", userIDs, now).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Consume marks the token used and activates the user with the new password hash.
// Returns gorm.ErrRecordNotFound if the token was already used or has expired.
func (r *PasswordResetTokenRepository) Consume(tokenID, userID uuid.UUID, passwordHash string, now time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PasswordResetToken{}).
			Where("id = ? AND used_at IS NULL AND expires_at > ?", tokenID, now).
			Update("used_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"can_login":     true,
		}).Error
	})
}

// DeleteStale removes tokens that are expired or already used
func (r *PasswordResetTokenRepository) DeleteStale(now time.Time) (int64, error) {
	res := r.db.Where("expires_at <= ? OR used_at IS NOT NULL", now).Delete(&models.PasswordResetToken{})
	return res.RowsAffected, res.Error
}
