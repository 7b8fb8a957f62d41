package testutils

import (
	"fmt"
	"time"

	"gamejam-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	code := "TEST" + uuid.NewString()[:4]
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Test Team",
		Mode:       models.TeamTypeTeam,
		InviteCode: &code,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithLeader sets the leader of the team
func (f *TeamFactory) WithLeader(leaderID uuid.UUID) *models.Team {
	team := f.Create()
	team.LeaderID = &leaderID
	return team
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active test User with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash := "$2a$10$abcdefghijklmnopqrstuu8J1ZkWQ0H8C2Zp9k7X8a6b5c4d3e2f1"
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        fmt.Sprintf("user-%s@example.com", id.String()[:8]),
		Name:         "Test User",
		Phone:        "+905551112233",
		Age:          21,
		ProfileRole:  models.ProfileRoleDeveloper,
		CanLogin:     true,
		PasswordHash: &hash,
		Source:       models.UserSourceForm,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithTeam places the user in a team
func (f *UserFactory) WithTeam(teamID uuid.UUID) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	return user
}

// Inactive creates a user who was added to a team but never activated
func (f *UserFactory) Inactive() *models.User {
	user := f.Create()
	user.CanLogin = false
	user.PasswordHash = nil
	user.Source = models.UserSourceTeam
	return user
}

// ApplicationFactory provides methods to create test Application data
type ApplicationFactory struct{}

// NewApplicationFactory creates a new ApplicationFactory
func NewApplicationFactory() *ApplicationFactory {
	return &ApplicationFactory{}
}

// Create creates a pending individual application
func (f *ApplicationFactory) Create() *models.Application {
	id := uuid.New()
	return &models.Application{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Başvuru Sahibi",
		Email:       fmt.Sprintf("applicant-%s@example.com", id.String()[:8]),
		Phone:       "05551112233",
		Age:         20,
		ProfileRole: models.ProfileRoleDesigner,
		Mode:        models.TeamTypeIndividual,
		Teammates:   []models.Teammate{},
		Status:      models.ApplicationStatusPending,
	}
}

// WithTeammates creates a pending team application with the given teammates
func (f *ApplicationFactory) WithTeammates(teamName string, teammates ...models.Teammate) *models.Application {
	app := f.Create()
	app.Mode = models.TeamTypeTeam
	app.TeamName = teamName
	app.Teammates = teammates
	return app
}

// AnnouncementFactory provides methods to create test Announcement data
type AnnouncementFactory struct{}

// NewAnnouncementFactory creates a new AnnouncementFactory
func NewAnnouncementFactory() *AnnouncementFactory {
	return &AnnouncementFactory{}
}

// Create creates a published, unpinned announcement
func (f *AnnouncementFactory) Create() *models.Announcement {
	return &models.Announcement{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Jam başlıyor",
		Body:        "Tema cuma akşamı açıklanacak.",
		PublishedAt: time.Now(),
	}
}

// FactorySet provides all factories in one place
type FactorySet struct {
	Team         *TeamFactory
	User         *UserFactory
	Application  *ApplicationFactory
	Announcement *AnnouncementFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:         NewTeamFactory(),
		User:         NewUserFactory(),
		Application:  NewApplicationFactory(),
		Announcement: NewAnnouncementFactory(),
	}
}
