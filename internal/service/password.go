package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"gamejam-portal-backend/internal/cookies"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/logger"
	"gamejam-portal-backend/internal/mailer"
	"gamejam-portal-backend/internal/ratelimit"
	"gamejam-portal-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

// ForgotPasswordRequest represents the forgot-password body
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest represents the reset-password body
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PasswordService runs the forgot/reset flow. Consuming a token is also how
// invited team members activate their account.
type PasswordService struct {
	users   repository.UserRepositoryInterface
	tokens  repository.PasswordResetTokenRepositoryInterface
	invites InviteServiceInterface
	mailer  mailer.Mailer
	limiter ratelimit.Limiter
	now     func() time.Time
}

// NewPasswordService creates a new password service
func NewPasswordService(users repository.UserRepositoryInterface, tokens repository.PasswordResetTokenRepositoryInterface, invites InviteServiceInterface, m mailer.Mailer, limiter ratelimit.Limiter) *PasswordService {
	return &PasswordService{
		users:   users,
		tokens:  tokens,
		invites: invites,
		mailer:  m,
		limiter: limiter,
		now:     time.Now,
	}
}

// RequestReset emails a reset link when the address belongs to a user.
// Unknown addresses succeed silently so accounts cannot be enumerated.
func (s *PasswordService) RequestReset(ctx context.Context, email string) error {
	email = cookies.NormalizeEmail(email)
	if email == "" {
		return apperrors.ErrEmailRequired
	}

	if allowed, _ := s.limiter.Allow(ctx, email); !allowed {
		return apperrors.ErrTooManyRequests
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WithContext(ctx).Debugf("reset requested for unknown address %s", email)
			return nil
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	raw, expiresAt, err := s.invites.Issue(ctx, user.ID)
	if err != nil {
		return err
	}

	msg := mailer.Message{
		To:      []string{user.Email},
		Subject: "Şifre sıfırlama bağlantınız",
		Body: fmt.Sprintf("Merhaba %s,\n\nŞifreni belirlemek için bağlantı:\n%s\n\nBağlantı %s tarihine kadar geçerlidir.\n",
			user.Name, s.invites.ResetURL(raw), expiresAt.Format("02.01.2006 15:04")),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

// Reset sets a new password using a raw token, activates the account and burns the token
func (s *PasswordService) Reset(ctx context.Context, rawToken, newPassword string) error {
	if utf8.RuneCountInString(newPassword) < minPasswordLength {
		return apperrors.ErrWeakPassword
	}
	if rawToken == "" {
		return apperrors.ErrInvalidResetToken
	}

	now := s.now()
	token, err := s.tokens.GetByHash(HashToken(rawToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return fmt.Errorf("failed to load reset token: %w", err)
	}
	if !token.Usable(now) {
		return apperrors.ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.tokens.Consume(token.ID, token.UserID, string(hash), now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return fmt.Errorf("failed to consume reset token: %w", err)
	}

	logger.WithContext(ctx).WithField("user_id", token.UserID).Infof("password set via reset token")
	return nil
}
