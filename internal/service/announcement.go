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
	"gorm.io/gorm"
)

// CreateAnnouncementRequest represents the request to publish an announcement
type CreateAnnouncementRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Body        string     `json:"body" validate:"required"`
	Pinned      bool       `json:"pinned"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// AnnouncementListResponse represents a paginated list of announcements
type AnnouncementListResponse struct {
	Announcements []models.Announcement `json:"announcements"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
}

// AnnouncementService handles business logic for announcements
type AnnouncementService struct {
	repo      repository.AnnouncementRepositoryInterface
	validator *validator.Validate
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(repo repository.AnnouncementRepositoryInterface, validator *validator.Validate) *AnnouncementService {
	return &AnnouncementService{repo: repo, validator: validator}
}

// Create publishes an announcement, now unless a publish time is given
func (s *AnnouncementService) Create(ctx context.Context, req *CreateAnnouncementRequest) (*models.Announcement, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Body = strings.TrimSpace(req.Body)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	a := &models.Announcement{
		Title:       req.Title,
		Body:        req.Body,
		Pinned:      req.Pinned,
		PublishedAt: time.Now(),
	}
	if req.PublishedAt != nil {
		a.PublishedAt = *req.PublishedAt
	}

	if err := s.repo.Create(a); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	logger.WithContext(ctx).WithField("announcement_id", a.ID).Infof("announcement %q published", a.Title)
	return a, nil
}

// List returns announcements, pinned first then newest
func (s *AnnouncementService) List(page, pageSize int) (*AnnouncementListResponse, error) {
	limit, offset, page, pageSize := pageBounds(page, pageSize)
	items, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	if items == nil {
		items = []models.Announcement{}
	}
	return &AnnouncementListResponse{Announcements: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// Delete removes an announcement
func (s *AnnouncementService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAnnouncementNotFound
		}
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	logger.WithContext(ctx).WithField("announcement_id", id).Infof("announcement deleted")
	return nil
}
