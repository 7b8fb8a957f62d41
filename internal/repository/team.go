package repository

import (
	"gamejam-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// CreateWithLeader creates the team and moves the leader into it in one transaction
func (r *TeamRepository) CreateWithLeader(team *models.Team, leaderID uuid.UUID) error {
	team.LeaderID = &leaderID
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", leaderID).Update("team_id", team.ID).Error
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithMembers retrieves a team with all its members, oldest first
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("users.created_at ASC")
	}).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves teams with their member counts, optionally filtered by name
func (r *TeamRepository) GetAll(query string, limit, offset int) ([]models.TeamSummary, int64, error) {
	var teams []models.TeamSummary
	var total int64

	base := r.db.Model(&models.Team{})
	if query != "" {
		base = base.Where("teams.name ILIKE ?", "%"+query+"%")
	}

	// Get total count
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := base.
		Select("teams.*, (SELECT COUNT(*) FROM users WHERE users.team_id = teams.id) AS member_count").
		Order("teams.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// UpdateFields applies a partial update to a team
func (r *TeamRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	res := r.db.Model(&models.Team{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountSubmissions returns how many submissions reference the team
func (r *TeamRepository) CountSubmissions(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Submission{}).Where("team_id = ?", id).Count(&count).Error
	return count, err
}

// DeleteUnlinkingMembers detaches every member and deletes the team in one transaction
func (r *TeamRepository) DeleteUnlinkingMembers(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("team_id = ?", id).Update("team_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Team{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
