package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gamejam-portal-backend/internal/database/models"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/logger"
	"gamejam-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const maxSlugAttempts = 50

// UpsertSubmissionRequest represents the participant's submission form
type UpsertSubmissionRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=120"`
	Description string   `json:"description" validate:"max=5000"`
	RepoURL     string   `json:"repoUrl" validate:"omitempty,url,max=500"`
	BuildURL    string   `json:"buildUrl" validate:"omitempty,url,max=500"`
	VideoURL    string   `json:"videoUrl" validate:"omitempty,url,max=500"`
	Tags        []string `json:"tags" validate:"max=8,dive,max=40"`
	Submit      bool     `json:"submit"`
}

// ReviewSubmissionRequest represents an organiser's score
type ReviewSubmissionRequest struct {
	Score int    `json:"score" validate:"min=0,max=100"`
	Note  string `json:"note" validate:"max=1000"`
}

// SubmissionResponse represents a submission
type SubmissionResponse struct {
	ID          uuid.UUID               `json:"id"`
	TeamID      *uuid.UUID              `json:"teamId,omitempty"`
	UserID      *uuid.UUID              `json:"userId,omitempty"`
	Title       string                  `json:"title"`
	Slug        string                  `json:"slug"`
	Description string                  `json:"description"`
	RepoURL     string                  `json:"repoUrl"`
	BuildURL    string                  `json:"buildUrl"`
	VideoURL    string                  `json:"videoUrl"`
	Status      models.SubmissionStatus `json:"status"`
	ReviewScore *int                    `json:"reviewScore,omitempty"`
	ReviewNote  string                  `json:"reviewNote,omitempty"`
	Tags        []string                `json:"tags"`
	UpdatedAt   string                  `json:"updatedAt"`
}

// SubmissionListResponse represents a paginated list of submissions
type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// SubmissionService handles game submissions. A participant in a team submits
// on behalf of the team; a solo participant submits for themself.
type SubmissionService struct {
	repo      repository.SubmissionRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(repo repository.SubmissionRepositoryInterface, users repository.UserRepositoryInterface, validator *validator.Validate) *SubmissionService {
	return &SubmissionService{repo: repo, users: users, validator: validator}
}

// Upsert creates or updates the caller's submission
func (s *SubmissionService) Upsert(ctx context.Context, userID uuid.UUID, req *UpsertSubmissionRequest) (*SubmissionResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	sub, err := s.findOwned(user)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}
	if sub == nil {
		sub = &models.Submission{Status: models.SubmissionStatusDraft}
		if user.TeamID != nil {
			sub.TeamID = user.TeamID
		} else {
			sub.UserID = &user.ID
		}
	}
	if sub.Status == models.SubmissionStatusReviewed {
		return nil, apperrors.ErrSubmissionLocked
	}

	if sub.Slug == "" || sub.Title != req.Title {
		if sub.Slug, err = s.uniqueSlug(req.Title, sub.ID); err != nil {
			return nil, err
		}
	}
	sub.Title = req.Title
	sub.Description = strings.TrimSpace(req.Description)
	sub.RepoURL = strings.TrimSpace(req.RepoURL)
	sub.BuildURL = strings.TrimSpace(req.BuildURL)
	sub.VideoURL = strings.TrimSpace(req.VideoURL)
	if req.Submit {
		sub.Status = models.SubmissionStatusSubmitted
	}

	if err := s.repo.SaveWithTags(sub, req.Tags); err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	logger.WithContext(ctx).WithField("submission_id", sub.ID).Infof("submission %q saved as %s", sub.Slug, sub.Status)
	return submissionResponse(sub), nil
}

// Mine returns the caller's submission, through their team when they have one
func (s *SubmissionService) Mine(userID uuid.UUID) (*SubmissionResponse, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}
	sub, err := s.findOwned(user)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}
	return submissionResponse(sub), nil
}

// List returns submissions filtered by status and tag
func (s *SubmissionService) List(status models.SubmissionStatus, tag string, page, pageSize int) (*SubmissionListResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "Geçersiz durum")
	}
	limit, offset, page, pageSize := pageBounds(page, pageSize)

	subs, total, err := s.repo.GetAll(status, strings.TrimSpace(tag), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	out := make([]SubmissionResponse, len(subs))
	for i := range subs {
		out[i] = *submissionResponse(&subs[i])
	}
	return &SubmissionListResponse{Submissions: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// Review scores a submitted entry
func (s *SubmissionService) Review(ctx context.Context, id uuid.UUID, req *ReviewSubmissionRequest) (*SubmissionResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	sub, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if sub.Status == models.SubmissionStatusDraft {
		return nil, apperrors.NewValidationError("status", "Taslak proje değerlendirilemez")
	}

	score := req.Score
	sub.ReviewScore = &score
	sub.ReviewNote = strings.TrimSpace(req.Note)
	sub.Status = models.SubmissionStatusReviewed
	if err := s.repo.Update(sub); err != nil {
		return nil, fmt.Errorf("failed to review submission: %w", err)
	}

	logger.WithContext(ctx).WithField("submission_id", sub.ID).Infof("submission %q scored %d", sub.Slug, score)
	return submissionResponse(sub), nil
}

func (s *SubmissionService) loadUser(id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *SubmissionService) findOwned(user *models.User) (*models.Submission, error) {
	if user.TeamID != nil {
		return s.repo.GetByTeamID(*user.TeamID)
	}
	return s.repo.GetByUserID(user.ID)
}

// uniqueSlug slugifies title and appends -2, -3, ... until no other submission uses it
func (s *SubmissionService) uniqueSlug(title string, excludeID uuid.UUID) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "proje"
	}
	candidate := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		taken, err := s.repo.SlugTaken(candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("no free slug for %q", base)
}

func submissionResponse(sub *models.Submission) *SubmissionResponse {
	tags := make([]string, len(sub.Tags))
	for i, t := range sub.Tags {
		tags[i] = t.Name
	}
	return &SubmissionResponse{
		ID:          sub.ID,
		TeamID:      sub.TeamID,
		UserID:      sub.UserID,
		Title:       sub.Title,
		Slug:        sub.Slug,
		Description: sub.Description,
		RepoURL:     sub.RepoURL,
		BuildURL:    sub.BuildURL,
		VideoURL:    sub.VideoURL,
		Status:      sub.Status,
		ReviewScore: sub.ReviewScore,
		ReviewNote:  sub.ReviewNote,
		Tags:        tags,
		UpdatedAt:   sub.UpdatedAt.Format(time.RFC3339),
	}
}
