package repository

import (
	"errors"
	"strings"

	"gamejam-portal-backend/internal/database/models"
	apperrors "gamejam-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDs retrieves all users whose ID is in ids
func (r *UserRepository) GetByIDs(ids []uuid.UUID) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByTeamID retrieves the members of a team, oldest first
func (r *UserRepository) GetByTeamID(teamID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("team_id = ?", teamID).Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetAdmins retrieves every organiser account
func (r *UserRepository) GetAdmins() ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("is_admin = ?", true).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetParticipantIDs returns the IDs of every non-organiser account
func (r *UserRepository) GetParticipantIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.Model(&models.User{}).Where("is_admin = ?", false).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Update saves all fields of a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// AttachToTeam moves a team-less user into a team. The team row is locked
// so concurrent additions cannot push the team past maxMembers.
func (r *UserRepository) AttachToTeam(teamID, userID uuid.UUID, role models.ProfileRole, maxMembers int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockTeamWithCapacity(tx, teamID, maxMembers); err != nil {
			return err
		}
		res := tx.Model(&models.User{}).
			Where("id = ? AND team_id IS NULL", userID).
			Updates(map[string]interface{}{"team_id": teamID, "profile_role": role})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// someone attached the user elsewhere after our read
			return apperrors.ErrInOtherTeam
		}
		return nil
	})
}

// CreateInTeam inserts a new user directly under user.TeamID after a capacity check
func (r *UserRepository) CreateInTeam(user *models.User, maxMembers int) error {
	if user.TeamID == nil {
		return apperrors.NewValidationError("team_id", "team is required")
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockTeamWithCapacity(tx, *user.TeamID, maxMembers); err != nil {
			return err
		}
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrUserExists
			}
			return err
		}
		return nil
	})
}

// DetachFromTeam clears team_id for the member with the given email
func (r *UserRepository) DetachFromTeam(teamID uuid.UUID, email string) (int64, error) {
	res := r.db.Model(&models.User{}).
		Where("team_id = ? AND email = ?", teamID, strings.ToLower(strings.TrimSpace(email))).
		Update("team_id", nil)
	return res.RowsAffected, res.Error
}

// DetachAllExcept clears team_id for every member but keepUserID
func (r *UserRepository) DetachAllExcept(teamID, keepUserID uuid.UUID) (int64, error) {
	res := r.db.Model(&models.User{}).
		Where("team_id = ? AND id <> ?", teamID, keepUserID).
		Update("team_id", nil)
	return res.RowsAffected, res.Error
}

// SetAdmin flags or unflags an organiser by email
func (r *UserRepository) SetAdmin(email string, isAdmin bool) error {
	return r.db.Model(&models.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Update("is_admin", isAdmin).Error
}

// lockTeamWithCapacity takes a row lock on the team and fails with ErrTeamFull
// when it already holds maxMembers users
func lockTeamWithCapacity(tx *gorm.DB, teamID uuid.UUID, maxMembers int) error {
	var team models.Team
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&team, "id = ?", teamID).Error; err != nil {
		return err
	}
	var count int64
	if err := tx.Model(&models.User{}).Where("team_id = ?", teamID).Count(&count).Error; err != nil {
		return err
	}
	if count >= int64(maxMembers) {
		return apperrors.ErrTeamFull
	}
	return nil
}
