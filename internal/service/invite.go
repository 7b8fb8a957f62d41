package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"gamejam-portal-backend/internal/database/models"
	"gamejam-portal-backend/internal/logger"
	"gamejam-portal-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	inviteTokenBytes = 32
	resetPath        = "/sifre-sifirla"
)

// InviteService issues single-use activation tokens for members who cannot log in yet
type InviteService struct {
	tokens  repository.PasswordResetTokenRepositoryInterface
	baseURL string
	ttl     time.Duration
	now     func() time.Time
}

// NewInviteService creates a new invite service
func NewInviteService(tokens repository.PasswordResetTokenRepositoryInterface, baseURL string, ttl time.Duration) *InviteService {
	return &InviteService{
		tokens:  tokens,
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     ttl,
		now:     time.Now,
	}
}

// HashToken returns the hex SHA-256 digest stored in place of a raw token
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Issue replaces every earlier token of the user with a fresh one and returns
// the raw token. Only its hash is persisted.
func (s *InviteService) Issue(ctx context.Context, userID uuid.UUID) (string, time.Time, error) {
	buf := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate invite token: %w", err)
	}
	raw := hex.EncodeToString(buf)
	expiresAt := s.now().Add(s.ttl)

	token := &models.PasswordResetToken{
		UserID:    userID,
		TokenHash: HashToken(raw),
		ExpiresAt: expiresAt,
	}
	if err := s.tokens.ReplaceForUser(token); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store invite token: %w", err)
	}

	logger.WithContext(ctx).WithField("user_id", userID).Debugf("invite token issued, expires %s", expiresAt.Format(time.RFC3339))
	return raw, expiresAt, nil
}

// ResetURL builds the activation link for a raw token
func (s *InviteService) ResetURL(rawToken string) string {
	return s.baseURL + resetPath + "?token=" + rawToken
}

// HasLiveToken reports whether the user holds an unused, unexpired token
func (s *InviteService) HasLiveToken(ctx context.Context, userID uuid.UUID) (bool, error) {
	live, err := s.LiveTokenUserIDs(ctx, []uuid.UUID{userID})
	if err != nil {
		return false, err
	}
	return live[userID], nil
}

// LiveTokenUserIDs returns the set of userIDs holding a live token
func (s *InviteService) LiveTokenUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	live := make(map[uuid.UUID]bool, len(userIDs))
	if len(userIDs) == 0 {
		return live, nil
	}
	ids, err := s.tokens.LiveUserIDs(userIDs, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to load invite tokens: %w", err)
	}
	for _, id := range ids {
		live[id] = true
	}
	return live, nil
}

// PurgeExpired deletes used and expired tokens
func (s *InviteService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.tokens.DeleteStale(s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge reset tokens: %w", err)
	}
	if n > 0 {
		logger.WithContext(ctx).Infof("purged %d stale reset tokens", n)
	}
	return n, nil
}
