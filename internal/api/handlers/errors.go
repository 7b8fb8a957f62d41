package handlers

import (
	"net/http"
	"strconv"

	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps service errors onto status codes. Anything unclassified is
// logged and answered with a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.PublicMessage(err)})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ConflictResponse{Error: apperrors.PublicMessage(err), Code: apperrors.ConflictCode(err)})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: apperrors.PublicMessage(err)})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: apperrors.PublicMessage(err)})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.PublicMessage(err)})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: apperrors.PublicMessage(err)})
	case apperrors.IsRateLimited(err):
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: apperrors.PublicMessage(err)})
	default:
		logger.WithContext(c).WithError(err).Errorf("%s %s failed", c.Request.Method, c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: apperrors.PublicMessage(err)})
	}
}

func parseIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Geçersiz " + label + " kimliği"})
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads page and page_size; the service clamps them
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

func invalidBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Geçersiz istek gövdesi"})
}
