package auth

import (
	"fmt"
	"strings"
	"time"

	"gamejam-portal-backend/internal/config"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret   string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer      string        `yaml:"issuer" json:"issuer"`
	SessionTTL  time.Duration `yaml:"session_ttl" json:"session_ttl"`
	AdminEmails []string      `yaml:"admin_emails" json:"admin_emails"`
}

// LoadAuthConfig derives the authentication configuration from the application config
func LoadAuthConfig(cfg *config.Config) (*AuthConfig, error) {
	authConfig := &AuthConfig{
		JWTSecret:   cfg.JWTSecret,
		Issuer:      "gamejam-portal-backend",
		SessionTTL:  time.Duration(cfg.JWTTTLHours) * time.Hour,
		AdminEmails: cfg.AdminEmailList(),
	}

	if err := authConfig.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}
	return authConfig, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}
	return nil
}

// IsAdminEmail reports whether email is configured as an organiser
func (c *AuthConfig) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range c.AdminEmails {
		if e == email {
			return true
		}
	}
	return false
}
