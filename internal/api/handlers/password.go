package handlers

import (
	"net/http"

	"gamejam-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PasswordHandler handles the forgot/reset password endpoints
type PasswordHandler struct {
	passwords service.PasswordServiceInterface
}

// NewPasswordHandler creates a new password handler
func NewPasswordHandler(passwords service.PasswordServiceInterface) *PasswordHandler {
	return &PasswordHandler{passwords: passwords}
}

// MessageOnlyResponse is a bare acknowledgement
type MessageOnlyResponse struct {
	Message string `json:"message"`
}

// ForgotPassword mails a reset link if the address belongs to an account
// @Summary Request a password reset
// @Description Always answers the same way so the endpoint cannot be used to probe for accounts
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.ForgotPasswordRequest true "Account email"
// @Success 200 {object} MessageOnlyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/auth/forgot-password [post]
func (h *PasswordHandler) ForgotPassword(c *gin.Context) {
	var req service.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "E-posta gerekli"})
		return
	}

	if err := h.passwords.RequestReset(c, req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageOnlyResponse{Message: "Hesap varsa sıfırlama bağlantısı gönderildi"})
}

// ResetPassword consumes a reset or invite token and sets a new password
// @Summary Reset password
// @Description Sets the password and enables login. Invited members activate their account here.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} MessageOnlyResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/auth/reset-password [post]
func (h *PasswordHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Token ve şifre gerekli"})
		return
	}

	if err := h.passwords.Reset(c, req.Token, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageOnlyResponse{Message: "Şifreniz güncellendi"})
}
