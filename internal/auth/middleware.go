package auth

import (
	"net/http"
	"strings"

	"gamejam-portal-backend/internal/cookies"
	apperrors "gamejam-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenValidator validates session tokens
type TokenValidator interface {
	ValidateJWT(tokenString string) (*AuthClaims, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service TokenValidator
	jar     *cookies.Jar
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service TokenValidator, jar *cookies.Jar) *AuthMiddleware {
	return &AuthMiddleware{service: service, jar: jar}
}

// RequireAuth validates the session token and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.tokenFrom(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Message})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Message})
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth validates the session token if present but doesn't require it
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := m.tokenFrom(c); tokenString != "" {
			if claims, err := m.service.ValidateJWT(tokenString); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireAdmin rejects callers whose session is not an organiser's. Must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Message})
			c.Abort()
			return
		}
		if !claims.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrAdminRequired.Message})
			c.Abort()
			return
		}
		c.Next()
	}
}

// tokenFrom prefers the Authorization header and falls back to the session cookie
func (m *AuthMiddleware) tokenFrom(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return ""
		}
		return strings.TrimSpace(tokenString)
	}
	if m.jar != nil {
		return m.jar.ReadSession(c)
	}
	return ""
}

func setClaims(c *gin.Context, claims *AuthClaims) {
	if id, err := uuid.Parse(claims.UserID); err == nil {
		c.Set("user_id", id)
	}
	c.Set("email", claims.Email)
	c.Set("is_admin", claims.IsAdmin)
	c.Set("auth_claims", claims)
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// IsAdmin reports whether the authenticated caller is an organiser
func IsAdmin(c *gin.Context) bool {
	return c.GetBool("is_admin")
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
