package repository

import (
	"time"

	"gamejam-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	GetByTeamID(teamID uuid.UUID) ([]models.User, error)
	GetAdmins() ([]models.User, error)
	GetParticipantIDs() ([]uuid.UUID, error)
	Update(user *models.User) error
	AttachToTeam(teamID, userID uuid.UUID, role models.ProfileRole, maxMembers int) error
	CreateInTeam(user *models.User, maxMembers int) error
	DetachFromTeam(teamID uuid.UUID, email string) (int64, error)
	DetachAllExcept(teamID, keepUserID uuid.UUID) (int64, error)
	SetAdmin(email string, isAdmin bool) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	CreateWithLeader(team *models.Team, leaderID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetAll(query string, limit, offset int) ([]models.TeamSummary, int64, error)
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	CountSubmissions(id uuid.UUID) (int64, error)
	DeleteUnlinkingMembers(id uuid.UUID) error
}

// PasswordResetTokenRepositoryInterface defines the interface for reset token operations
type PasswordResetTokenRepositoryInterface interface {
	ReplaceForUser(token *models.PasswordResetToken) error
	GetByHash(hash string) (*models.PasswordResetToken, error)
	LiveUserIDs(userIDs []uuid.UUID, now time.Time) ([]uuid.UUID, error)
	Consume(tokenID, userID uuid.UUID, passwordHash string, now time.Time) error
	DeleteStale(now time.Time) (int64, error)
}

// ApplicationRepositoryInterface defines the interface for application repository operations
type ApplicationRepositoryInterface interface {
	Create(app *models.Application) error
	GetByID(id uuid.UUID) (*models.Application, error)
	GetPendingByEmail(email string) (*models.Application, error)
	GetAll(status models.ApplicationStatus, limit, offset int) ([]models.Application, int64, error)
	Update(app *models.Application) error
	Approve(app *models.Application, applicant *models.User, team *models.Team, teammates []models.User) error
}

// MessageRepositoryInterface defines the interface for message repository operations
type MessageRepositoryInterface interface {
	Create(msg *models.Message) error
	GetByID(id uuid.UUID) (*models.Message, error)
	Inbox(userID uuid.UUID, limit, offset int) ([]models.MessageRecipient, int64, error)
	Outbox(senderID uuid.UUID, limit, offset int) ([]models.Message, int64, error)
	MarkRead(messageID, userID uuid.UUID, at time.Time) (int64, error)
	DeleteForRecipient(messageID, userID uuid.UUID) (int64, error)
	DeleteForSender(messageID, senderID uuid.UUID) (int64, error)
	UnreadCount(userID uuid.UUID) (int64, error)
}

// SubmissionRepositoryInterface defines the interface for submission repository operations
type SubmissionRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Submission, error)
	GetByTeamID(teamID uuid.UUID) (*models.Submission, error)
	GetByUserID(userID uuid.UUID) (*models.Submission, error)
	SlugTaken(slug string, excludeID uuid.UUID) (bool, error)
	SaveWithTags(sub *models.Submission, tagNames []string) error
	GetAll(status models.SubmissionStatus, tag string, limit, offset int) ([]models.Submission, int64, error)
	Update(sub *models.Submission) error
}

// AnnouncementRepositoryInterface defines the interface for announcement repository operations
type AnnouncementRepositoryInterface interface {
	Create(a *models.Announcement) error
	GetAll(limit, offset int) ([]models.Announcement, int64, error)
	Delete(id uuid.UUID) error
}
