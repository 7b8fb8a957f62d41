package service

import (
	"context"
	"time"

	"gamejam-portal-backend/internal/cookies"
	"gamejam-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RosterServiceInterface defines the team roster operations behind /api/team
type RosterServiceInterface interface {
	Read(ctx context.Context, caller Caller, snap *cookies.TeamSnapshot, refresh bool) (*cookies.TeamSnapshot, bool, error)
	Patch(ctx context.Context, caller Caller, snap *cookies.TeamSnapshot, req *PatchTeamRequest) (*cookies.TeamSnapshot, error)
	AddMember(ctx context.Context, caller Caller, snap *cookies.TeamSnapshot, req *AddMemberRequest) (*AddMemberResult, error)
	RemoveMember(ctx context.Context, caller Caller, snap *cookies.TeamSnapshot, email string) (*cookies.TeamSnapshot, error)
}

// InviteServiceInterface defines the interface for invite token issuance
type InviteServiceInterface interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, time.Time, error)
	ResetURL(rawToken string) string
	HasLiveToken(ctx context.Context, userID uuid.UUID) (bool, error)
	LiveTokenUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

// PasswordServiceInterface defines the forgot/reset password flow
type PasswordServiceInterface interface {
	RequestReset(ctx context.Context, email string) error
	Reset(ctx context.Context, rawToken, newPassword string) error
}

// ApplicationServiceInterface defines the interface for application service
type ApplicationServiceInterface interface {
	Submit(ctx context.Context, req *SubmitApplicationRequest) (*ApplicationResponse, error)
	List(status models.ApplicationStatus, page, pageSize int) (*ApplicationListResponse, error)
	Get(id uuid.UUID) (*ApplicationResponse, error)
	Approve(ctx context.Context, id uuid.UUID, note string) (*ApplicationResponse, error)
	Reject(ctx context.Context, id uuid.UUID, note string) (*ApplicationResponse, error)
}

// AdminTeamServiceInterface defines the interface for organiser team management
type AdminTeamServiceInterface interface {
	List(query string, page, pageSize int) (*TeamListResponse, error)
	Get(id uuid.UUID) (*TeamDetailResponse, error)
	Match(ctx context.Context, teamID, userID uuid.UUID) (*TeamDetailResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MessageServiceInterface defines the interface for message service
type MessageServiceInterface interface {
	Broadcast(ctx context.Context, senderID uuid.UUID, req *BroadcastRequest) (*MessageResponse, error)
	Send(ctx context.Context, senderID uuid.UUID, req *SendMessageRequest) (*MessageResponse, error)
	Inbox(userID uuid.UUID, page, pageSize int) (*InboxResponse, error)
	Outbox(userID uuid.UUID, page, pageSize int) (*OutboxResponse, error)
	MarkRead(userID, messageID uuid.UUID) error
	DeleteForRecipient(userID, messageID uuid.UUID) error
	DeleteForSender(userID, messageID uuid.UUID) error
	UnreadCount(userID uuid.UUID) (int64, error)
}

// SubmissionServiceInterface defines the interface for submission service
type SubmissionServiceInterface interface {
	Upsert(ctx context.Context, userID uuid.UUID, req *UpsertSubmissionRequest) (*SubmissionResponse, error)
	Mine(userID uuid.UUID) (*SubmissionResponse, error)
	List(status models.SubmissionStatus, tag string, page, pageSize int) (*SubmissionListResponse, error)
	Review(ctx context.Context, id uuid.UUID, req *ReviewSubmissionRequest) (*SubmissionResponse, error)
}

// AnnouncementServiceInterface defines the interface for announcement service
type AnnouncementServiceInterface interface {
	Create(ctx context.Context, req *CreateAnnouncementRequest) (*models.Announcement, error)
	List(page, pageSize int) (*AnnouncementListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
