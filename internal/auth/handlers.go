package auth

import (
	"net/http"

	"gamejam-portal-backend/internal/cookies"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
	jar     *cookies.Jar
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, jar *cookies.Jar) *AuthHandler {
	return &AuthHandler{service: service, jar: jar}
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Check email and password, set the session and profile cookies and return the token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse "Logged in"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Wrong credentials or inactive account"
// @Failure 429 {object} map[string]interface{} "Too many attempts"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "E-posta ve şifre gerekli"})
		return
	}

	resp, err := h.service.Login(c, req.Email, req.Password, c.ClientIP())
	if err != nil {
		switch {
		case apperrors.IsAuthentication(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.PublicMessage(err)})
		case apperrors.IsRateLimited(err):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": apperrors.PublicMessage(err)})
		default:
			logger.WithContext(c).WithError(err).Errorf("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.PublicMessage(err)})
		}
		return
	}

	h.jar.WriteSession(c, resp.AccessToken, int(resp.ExpiresIn))
	if err := h.jar.WriteProfile(c, &resp.Profile); err != nil {
		logger.WithContext(c).WithError(err).Warnf("could not write profile cookie")
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Description Clear the session, profile and team cookies. Sessions are stateless so nothing is revoked server-side.
// @Tags authentication
// @Produce json
// @Success 200 {object} AuthLogoutResponse "Logged out"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.jar.ClearAll(c)
	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "Çıkış yapıldı"})
}

// Me handles GET /api/auth/me
// @Summary Current session
// @Description Return the logged-in user's profile
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse "Current user"
// @Failure 401 {object} map[string]interface{} "Not logged in"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Message})
		return
	}

	resp, err := h.service.Me(claims)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.PublicMessage(err)})
			return
		}
		logger.WithContext(c).WithError(err).Errorf("failed to load current user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.PublicMessage(err)})
		return
	}

	c.JSON(http.StatusOK, resp)
}
