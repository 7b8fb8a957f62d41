package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gamejam-portal-backend/internal/database/models"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/logger"
	"gamejam-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Broadcast audiences
const (
	AudienceAll   = "all"
	AudienceTeam  = "team"
	AudienceUsers = "users"
)

// BroadcastRequest represents an organiser message to many participants
type BroadcastRequest struct {
	Subject  string      `json:"subject" validate:"required,max=200"`
	Body     string      `json:"body" validate:"required,max=10000"`
	Audience string      `json:"audience" validate:"required,oneof=all team users"`
	TeamID   *uuid.UUID  `json:"team_id,omitempty"`
	UserIDs  []uuid.UUID `json:"user_ids,omitempty"`
}

// SendMessageRequest represents a participant message to the organisers
type SendMessageRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body" validate:"required,max=10000"`
}

// MessageResponse represents a sent message
type MessageResponse struct {
	ID             uuid.UUID  `json:"id"`
	SenderID       *uuid.UUID `json:"sender_id,omitempty"`
	Subject        string     `json:"subject"`
	Body           string     `json:"body"`
	RecipientCount int        `json:"recipient_count"`
	ReadCount      int        `json:"read_count"`
	CreatedAt      string     `json:"created_at"`
}

// InboxItem is a message as seen by one recipient
type InboxItem struct {
	MessageID  uuid.UUID  `json:"message_id"`
	Subject    string     `json:"subject"`
	Body       string     `json:"body"`
	SenderName string     `json:"sender_name"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	CreatedAt  string     `json:"created_at"`
}

// InboxResponse represents a paginated inbox
type InboxResponse struct {
	Messages []InboxItem `json:"messages"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// OutboxResponse represents a paginated outbox
type OutboxResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

const organisersName = "Organizasyon Ekibi"

// MessageService handles inbox/outbox messaging
type MessageService struct {
	repo      repository.MessageRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewMessageService creates a new message service
func NewMessageService(repo repository.MessageRepositoryInterface, users repository.UserRepositoryInterface, validator *validator.Validate) *MessageService {
	return &MessageService{repo: repo, users: users, validator: validator, now: time.Now}
}

// Broadcast sends an organiser message to everyone, one team or a list of users
func (s *MessageService) Broadcast(ctx context.Context, senderID uuid.UUID, req *BroadcastRequest) (*MessageResponse, error) {
	req.Subject = strings.TrimSpace(req.Subject)
	req.Body = strings.TrimSpace(req.Body)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	var recipients []uuid.UUID
	switch req.Audience {
	case AudienceAll:
		ids, err := s.users.GetParticipantIDs()
		if err != nil {
			return nil, fmt.Errorf("failed to load participants: %w", err)
		}
		recipients = ids
	case AudienceTeam:
		if req.TeamID == nil {
			return nil, apperrors.NewValidationError("team_id", "Takım seçilmeli")
		}
		members, err := s.users.GetByTeamID(*req.TeamID)
		if err != nil {
			return nil, fmt.Errorf("failed to load team members: %w", err)
		}
		recipients = userIDs(members)
	case AudienceUsers:
		users, err := s.users.GetByIDs(req.UserIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load users: %w", err)
		}
		recipients = userIDs(users)
	}

	return s.deliver(ctx, &senderID, req.Subject, req.Body, recipients)
}

// Send delivers a participant message to every organiser
func (s *MessageService) Send(ctx context.Context, senderID uuid.UUID, req *SendMessageRequest) (*MessageResponse, error) {
	req.Subject = strings.TrimSpace(req.Subject)
	req.Body = strings.TrimSpace(req.Body)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	admins, err := s.users.GetAdmins()
	if err != nil {
		return nil, fmt.Errorf("failed to load organisers: %w", err)
	}
	return s.deliver(ctx, &senderID, req.Subject, req.Body, userIDs(admins))
}

// Inbox lists the messages a user received and has not deleted
func (s *MessageService) Inbox(userID uuid.UUID, page, pageSize int) (*InboxResponse, error) {
	limit, offset, page, pageSize := pageBounds(page, pageSize)
	rows, total, err := s.repo.Inbox(userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to load inbox: %w", err)
	}

	items := make([]InboxItem, 0, len(rows))
	for _, r := range rows {
		if r.Message == nil {
			continue
		}
		sender := organisersName
		if r.Message.Sender != nil && !r.Message.Sender.IsAdmin {
			sender = r.Message.Sender.Name
		}
		items = append(items, InboxItem{
			MessageID:  r.MessageID,
			Subject:    r.Message.Subject,
			Body:       r.Message.Body,
			SenderName: sender,
			ReadAt:     r.ReadAt,
			CreatedAt:  r.Message.CreatedAt.Format(time.RFC3339),
		})
	}
	return &InboxResponse{Messages: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// Outbox lists the messages a user sent and has not deleted
func (s *MessageService) Outbox(userID uuid.UUID, page, pageSize int) (*OutboxResponse, error) {
	limit, offset, page, pageSize := pageBounds(page, pageSize)
	msgs, total, err := s.repo.Outbox(userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to load outbox: %w", err)
	}

	out := make([]MessageResponse, len(msgs))
	for i := range msgs {
		out[i] = *messageResponse(&msgs[i])
	}
	return &OutboxResponse{Messages: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// MarkRead records the first read of a message by a recipient
func (s *MessageService) MarkRead(userID, messageID uuid.UUID) error {
	n, err := s.repo.MarkRead(messageID, userID, s.now())
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	if n == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}

// DeleteForRecipient hides a message from the user's inbox
func (s *MessageService) DeleteForRecipient(userID, messageID uuid.UUID) error {
	n, err := s.repo.DeleteForRecipient(messageID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if n == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}

// DeleteForSender hides a message from the user's outbox
func (s *MessageService) DeleteForSender(userID, messageID uuid.UUID) error {
	n, err := s.repo.DeleteForSender(messageID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if n == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}

// UnreadCount returns the number of unread inbox messages
func (s *MessageService) UnreadCount(userID uuid.UUID) (int64, error) {
	n, err := s.repo.UnreadCount(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return n, nil
}

func (s *MessageService) deliver(ctx context.Context, senderID *uuid.UUID, subject, body string, recipients []uuid.UUID) (*MessageResponse, error) {
	seen := make(map[uuid.UUID]bool, len(recipients))
	msg := &models.Message{
		SenderID: senderID,
		Subject:  subject,
		Body:     body,
	}
	for _, id := range recipients {
		if seen[id] || (senderID != nil && id == *senderID) {
			continue
		}
		seen[id] = true
		msg.Recipients = append(msg.Recipients, models.MessageRecipient{UserID: id})
	}
	if len(msg.Recipients) == 0 {
		return nil, apperrors.ErrNoRecipients
	}

	if err := s.repo.Create(msg); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	logger.WithContext(ctx).WithField("message_id", msg.ID).Infof("message delivered to %d recipients", len(msg.Recipients))
	return messageResponse(msg), nil
}

func messageResponse(m *models.Message) *MessageResponse {
	read := 0
	for _, r := range m.Recipients {
		if r.ReadAt != nil {
			read++
		}
	}
	return &MessageResponse{
		ID:             m.ID,
		SenderID:       m.SenderID,
		Subject:        m.Subject,
		Body:           m.Body,
		RecipientCount: len(m.Recipients),
		ReadCount:      read,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}

func userIDs(users []models.User) []uuid.UUID {
	ids := make([]uuid.UUID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}
