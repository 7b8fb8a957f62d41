package repository

import (
	"strings"

	"gamejam-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionRepository handles database operations for submissions and tags
type SubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// GetByID retrieves a submission with its tags
func (r *SubmissionRepository) GetByID(id uuid.UUID) (*models.Submission, error) {
	var sub models.Submission
	err := r.db.Preload("Tags").First(&sub, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByTeamID retrieves the submission of a team
func (r *SubmissionRepository) GetByTeamID(teamID uuid.UUID) (*models.Submission, error) {
	var sub models.Submission
	err := r.db.Preload("Tags").First(&sub, "team_id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByUserID retrieves the submission of a solo participant
func (r *SubmissionRepository) GetByUserID(userID uuid.UUID) (*models.Submission, error) {
	var sub models.Submission
	err := r.db.Preload("Tags").First(&sub, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// SlugTaken reports whether another submission already uses slug
func (r *SubmissionRepository) SlugTaken(slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Submission{}).Where("slug = ? AND id <> ?", slug, excludeID).Count(&count).Error
	return count > 0, err
}

// SaveWithTags upserts the submission and replaces its tags, creating unknown tags by name
func (r *SubmissionRepository) SaveWithTags(sub *models.Submission, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		tags := make([]models.Tag, 0, len(tagNames))
		for _, name := range tagNames {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			var tag models.Tag
			if err := tx.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
				return err
			}
			tags = append(tags, tag)
		}

		sub.Tags = nil
		if err := tx.Omit("Tags").Save(sub).Error; err != nil {
			return err
		}
		if err := tx.Model(sub).Association("Tags").Replace(tags); err != nil {
			return err
		}
		sub.Tags = tags
		return nil
	})
}

// GetAll retrieves submissions filtered by status and tag name, newest first
func (r *SubmissionRepository) GetAll(status models.SubmissionStatus, tag string, limit, offset int) ([]models.Submission, int64, error) {
	var subs []models.Submission
	var total int64

	query := r.db.Model(&models.Submission{})
	if status != "" {
		query = query.Where("submissions.status = ?", status)
	}
	if tag != "" {
		query = query.
			Joins("JOIN submission_tags ON submission_tags.submission_id = submissions.id").
			Joins("JOIN tags ON tags.id = submission_tags.tag_id").
			Where("tags.name = ?", strings.ToLower(tag))
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Preload("Tags").
		Order("submissions.created_at DESC").Limit(limit).Offset(offset).
		Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

// Update saves the submission's own columns
func (r *SubmissionRepository) Update(sub *models.Submission) error {
	return r.db.Omit("Tags").Save(sub).Error
}
