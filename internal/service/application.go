package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gamejam-portal-backend/internal/cookies"
	"gamejam-portal-backend/internal/database/models"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/logger"
	"gamejam-portal-backend/internal/mailer"
	"gamejam-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	generatedPasswordAlphabet = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	generatedPasswordLength   = 12
)

// SubmitApplicationRequest represents the public registration form
type SubmitApplicationRequest struct {
	Name        string             `json:"name" validate:"required,min=3,max=100"`
	Email       string             `json:"email" validate:"required,max=255,jamemail"`
	Phone       string             `json:"phone" validate:"required,jamphone"`
	Age         int                `json:"age" validate:"min=14,max=120"`
	ProfileRole models.ProfileRole `json:"profileRole" validate:"required,jamrole" swaggertype:"string"`
	Mode        models.TeamType    `json:"mode" validate:"required,oneof=individual team" swaggertype:"string"`
	TeamName    string             `json:"teamName" validate:"max=64"`
	Teammates   []MemberInput      `json:"teammates" validate:"max=3,dive"`
	Motivation  string             `json:"motivation" validate:"max=2000"`
}

// ReviewApplicationRequest carries the organiser's note on approve/reject
type ReviewApplicationRequest struct {
	Note string `json:"note" validate:"max=500"`
}

// ApplicationResponse represents an application
type ApplicationResponse struct {
	ID          uuid.UUID                `json:"id"`
	Name        string                   `json:"name"`
	Email       string                   `json:"email"`
	Phone       string                   `json:"phone"`
	Age         int                      `json:"age"`
	ProfileRole models.ProfileRole       `json:"profileRole"`
	Mode        models.TeamType          `json:"mode"`
	TeamName    string                   `json:"teamName,omitempty"`
	Teammates   []models.Teammate        `json:"teammates"`
	Motivation  string                   `json:"motivation,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	ReviewNote  string                   `json:"reviewNote,omitempty"`
	ReviewedAt  *time.Time               `json:"reviewedAt,omitempty"`
	UserID      *uuid.UUID               `json:"userId,omitempty"`
	CreatedAt   string                   `json:"createdAt"`
}

// ApplicationListResponse represents a paginated list of applications
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// ApplicationService handles registration forms and their review
type ApplicationService struct {
	repo       repository.ApplicationRepositoryInterface
	users      repository.UserRepositoryInterface
	mailer     mailer.Mailer
	validator  *validator.Validate
	appBaseURL string
	now        func() time.Time
}

// NewApplicationService creates a new application service
func NewApplicationService(repo repository.ApplicationRepositoryInterface, users repository.UserRepositoryInterface, m mailer.Mailer, validator *validator.Validate, appBaseURL string) *ApplicationService {
	return &ApplicationService{
		repo:       repo,
		users:      users,
		mailer:     m,
		validator:  validator,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
		now:        time.Now,
	}
}

// Submit stores a new pending application
func (s *ApplicationService) Submit(ctx context.Context, req *SubmitApplicationRequest) (*ApplicationResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = cookies.NormalizeEmail(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	for i := range req.Teammates {
		req.Teammates[i].Name = strings.TrimSpace(req.Teammates[i].Name)
		req.Teammates[i].Email = cookies.NormalizeEmail(req.Teammates[i].Email)
		req.Teammates[i].Phone = strings.TrimSpace(req.Teammates[i].Phone)
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Mode == models.TeamTypeIndividual && len(req.Teammates) > 0 {
		return nil, apperrors.NewValidationError("teammates", "Bireysel başvuruda takım arkadaşı eklenemez")
	}

	seen := map[string]bool{req.Email: true}
	for _, tm := range req.Teammates {
		if seen[tm.Email] {
			return nil, apperrors.ErrDuplicateInRoster
		}
		seen[tm.Email] = true
	}

	if _, err := s.users.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if _, err := s.repo.GetPendingByEmail(req.Email); err == nil {
		return nil, apperrors.ErrApplicationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}

	app := &models.Application{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Age:         req.Age,
		ProfileRole: req.ProfileRole,
		Mode:        req.Mode,
		Teammates:   make([]models.Teammate, 0, len(req.Teammates)),
		Motivation:  strings.TrimSpace(req.Motivation),
		Status:      models.ApplicationStatusPending,
	}
	if req.Mode == models.TeamTypeTeam {
		app.TeamName = NormalizeTeamName(req.TeamName)
	}
	for _, tm := range req.Teammates {
		app.Teammates = append(app.Teammates, models.Teammate{
			Name: tm.Name, Email: tm.Email, Phone: tm.Phone, Age: tm.Age, Role: tm.Role,
		})
	}

	if err := s.repo.Create(app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrApplicationExists
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	logger.WithContext(ctx).WithField("application_id", app.ID).Infof("application received from %s", app.Email)
	return s.toResponse(app), nil
}

// List returns applications, newest first; an empty status lists all
func (s *ApplicationService) List(status models.ApplicationStatus, page, pageSize int) (*ApplicationListResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "Geçersiz durum")
	}
	limit, offset, page, pageSize := pageBounds(page, pageSize)

	apps, total, err := s.repo.GetAll(status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	out := make([]ApplicationResponse, len(apps))
	for i := range apps {
		out[i] = *s.toResponse(&apps[i])
	}
	return &ApplicationListResponse{Applications: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// Get retrieves an application by ID
func (s *ApplicationService) Get(id uuid.UUID) (*ApplicationResponse, error) {
	app, err := s.load(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(app), nil
}

// Approve provisions the applicant (and for team applications the team and its
// teammates) in one transaction, then mails the generated credentials.
// A mail failure is logged; the approval stands.
func (s *ApplicationService) Approve(ctx context.Context, id uuid.UUID, note string) (*ApplicationResponse, error) {
	app, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrAlreadyReviewed
	}
	if _, err := s.users.GetByEmail(app.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	password, err := randomString(generatedPasswordAlphabet, generatedPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	hash := string(hashed)

	applicant := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        app.Email,
		Name:         app.Name,
		Phone:        app.Phone,
		Age:          app.Age,
		ProfileRole:  app.ProfileRole,
		CanLogin:     true,
		PasswordHash: &hash,
		Source:       models.UserSourceForm,
	}

	var team *models.Team
	var teammates []models.User
	if app.Mode == models.TeamTypeTeam {
		code, err := NewInviteCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate invite code: %w", err)
		}
		team = &models.Team{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			Name:       NormalizeTeamName(app.TeamName),
			Mode:       models.TeamTypeTeam,
			InviteCode: &code,
			LeaderID:   &applicant.ID,
		}
		applicant.TeamID = &team.ID
		for _, tm := range app.Teammates {
			teammates = append(teammates, models.User{
				Email:       cookies.NormalizeEmail(tm.Email),
				Name:        tm.Name,
				Phone:       tm.Phone,
				Age:         tm.Age,
				ProfileRole: tm.Role,
				CanLogin:    false,
				TeamID:      &team.ID,
				Source:      models.UserSourceForm,
			})
		}
	}

	now := s.now()
	app.Status = models.ApplicationStatusApproved
	app.ReviewedAt = &now
	app.ReviewNote = strings.TrimSpace(note)
	app.UserID = &applicant.ID

	if err := s.repo.Approve(app, applicant, team, teammates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to approve application: %w", err)
	}

	log := logger.WithContext(ctx).WithField("application_id", app.ID)
	log.Infof("application approved for %s", app.Email)

	msg := mailer.Message{
		To:      []string{app.Email},
		Subject: "Başvurun onaylandı",
		Body: fmt.Sprintf("Merhaba %s,\n\nGame jam başvurun onaylandı.\nGiriş: %s/giris\nE-posta: %s\nŞifre: %s\n\nGiriş yaptıktan sonra şifreni değiştirmeni öneririz.\n",
			app.Name, s.appBaseURL, app.Email, password),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		log.WithError(err).Warnf("approval mail to %s failed", app.Email)
	}

	return s.toResponse(app), nil
}

// Reject marks a pending application rejected
func (s *ApplicationService) Reject(ctx context.Context, id uuid.UUID, note string) (*ApplicationResponse, error) {
	app, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrAlreadyReviewed
	}

	now := s.now()
	app.Status = models.ApplicationStatusRejected
	app.ReviewedAt = &now
	app.ReviewNote = strings.TrimSpace(note)
	if err := s.repo.Update(app); err != nil {
		return nil, fmt.Errorf("failed to reject application: %w", err)
	}

	logger.WithContext(ctx).WithField("application_id", app.ID).Infof("application rejected for %s", app.Email)
	return s.toResponse(app), nil
}

func (s *ApplicationService) load(id uuid.UUID) (*models.Application, error) {
	app, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

func (s *ApplicationService) toResponse(app *models.Application) *ApplicationResponse {
	teammates := app.Teammates
	if teammates == nil {
		teammates = []models.Teammate{}
	}
	return &ApplicationResponse{
		ID:          app.ID,
		Name:        app.Name,
		Email:       app.Email,
		Phone:       app.Phone,
		Age:         app.Age,
		ProfileRole: app.ProfileRole,
		Mode:        app.Mode,
		TeamName:    app.TeamName,
		Teammates:   teammates,
		Motivation:  app.Motivation,
		Status:      app.Status,
		ReviewNote:  app.ReviewNote,
		ReviewedAt:  app.ReviewedAt,
		UserID:      app.UserID,
		CreatedAt:   app.CreatedAt.Format(time.RFC3339),
	}
}
