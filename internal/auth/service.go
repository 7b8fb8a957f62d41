package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamejam-portal-backend/internal/cookies"
	"gamejam-portal-backend/internal/database/models"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/logger"
	"gamejam-portal-backend/internal/ratelimit"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository defines the user operations needed by the auth service
type UserRepository interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	SetAdmin(email string, isAdmin bool) error
}

// AuthService provides authentication functionality
type AuthService struct {
	config   *AuthConfig
	userRepo UserRepository
	limiter  ratelimit.Limiter
	now      func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID  string `json:"user_id" example:"2f6c1d9e-7a43-4c53-9c1e-1f0a6b1d2c3e"`
	Email   string `json:"email" example:"elif@example.com"`
	Name    string `json:"name" example:"Elif Kaya"`
	IsAdmin bool   `json:"is_admin" example:"false"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest represents the login form
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"elif@example.com"`
	Password string `json:"password" binding:"required" example:"gizli-sifre"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64           `json:"expiresIn" example:"604800"`
	IsAdmin     bool            `json:"isAdmin"`
	Profile     cookies.Profile `json:"profile"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Çıkış yapıldı"`
}

// MeResponse represents the current session
type MeResponse struct {
	ID      uuid.UUID       `json:"id"`
	IsAdmin bool            `json:"isAdmin"`
	TeamID  *uuid.UUID      `json:"teamId,omitempty"`
	Profile cookies.Profile `json:"profile"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo UserRepository, limiter ratelimit.Limiter) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	if limiter == nil {
		limiter = ratelimit.Noop{}
	}
	return &AuthService{
		config:   config,
		userRepo: userRepo,
		limiter:  limiter,
		now:      time.Now,
	}, nil
}

// Login checks the credentials and issues a session token.
// Attempts are limited per email and client address.
func (s *AuthService) Login(ctx context.Context, email, password, clientIP string) (*LoginResponse, error) {
	email = cookies.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}
	if allowed, _ := s.limiter.Allow(ctx, email+"|"+clientIP); !allowed {
		return nil, apperrors.ErrTooManyRequests
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.PasswordHash == nil {
		return nil, apperrors.ErrLoginDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.CanLogin {
		return nil, apperrors.ErrLoginDisabled
	}

	log := logger.WithContext(ctx).WithField("user_id", user.ID)
	if !user.IsAdmin && s.config.IsAdminEmail(user.Email) {
		if err := s.userRepo.SetAdmin(user.Email, true); err != nil {
			log.WithError(err).Warnf("could not promote %s to organiser", user.Email)
		} else {
			user.IsAdmin = true
			log.Infof("%s promoted to organiser", user.Email)
		}
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	log.Infof("%s logged in", user.Email)
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.SessionTTL.Seconds()),
		IsAdmin:     user.IsAdmin,
		Profile:     ProfileOf(user),
	}, nil
}

// Me returns the current user for validated claims
func (s *AuthService) Me(claims *AuthClaims) (*MeResponse, error) {
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &MeResponse{
		ID:      user.ID,
		IsAdmin: user.IsAdmin,
		TeamID:  user.TeamID,
		Profile: ProfileOf(user),
	}, nil
}

// SessionTTL returns how long an issued session stays valid
func (s *AuthService) SessionTTL() time.Duration {
	return s.config.SessionTTL
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:  user.ID.String(),
		Email:   user.Email,
		Name:    user.Name,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ProfileOf converts a user into the profile cookie payload
func ProfileOf(user *models.User) cookies.Profile {
	return cookies.Profile{
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Age:   user.Age,
		Role:  user.ProfileRole,
	}
}
