package repository

import (
	"strings"

	"gamejam-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationRepository handles database operations for registration applications
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create creates a new application
func (r *ApplicationRepository) Create(app *models.Application) error {
	app.Email = strings.ToLower(strings.TrimSpace(app.Email))
	return r.db.Create(app).Error
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetPendingByEmail retrieves the pending application for an email, if any
func (r *ApplicationRepository) GetPendingByEmail(email string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "email = ? AND status = ?",
		strings.ToLower(strings.TrimSpace(email)), models.ApplicationStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetAll retrieves applications, newest first. An empty status lists all.
func (r *ApplicationRepository) GetAll(status models.ApplicationStatus, limit, offset int) ([]models.Application, int64, error) {
	var apps []models.Application
	var total int64

	query := r.db.Model(&models.Application{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// Update saves all fields of an application
func (r *ApplicationRepository) Update(app *models.Application) error {
	return r.db.Save(app).Error
}

// Approve provisions the applicant, the optional team and its teammates and
// marks the application approved, all in one transaction.
// Teammates whose email already exists are skipped.
func (r *ApplicationRepository) Approve(app *models.Application, applicant *models.User, team *models.Team, teammates []models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if team != nil {
			if err := tx.Create(team).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(applicant).Error; err != nil {
			return err
		}
		for i := range teammates {
			var count int64
			if err := tx.Model(&models.User{}).Where("email = ?", teammates[i].Email).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(&teammates[i]).Error; err != nil {
				return err
			}
		}
		return tx.Save(app).Error
	})
}
