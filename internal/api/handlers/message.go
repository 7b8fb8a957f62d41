package handlers

import (
	"net/http"

	"gamejam-portal-backend/internal/auth"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MessageHandler handles inbox/outbox messaging
type MessageHandler struct {
	messages service.MessageServiceInterface
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messages service.MessageServiceInterface) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// UnreadCountResponse carries the unread badge count
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// Inbox lists messages delivered to the caller
// @Summary Inbox
// @Tags messages
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.InboxResponse
// @Security BearerAuth
// @Router /api/messages/inbox [get]
func (h *MessageHandler) Inbox(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)
	resp, err := h.messages.Inbox(userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Outbox lists messages the caller sent
// @Summary Outbox
// @Tags messages
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.OutboxResponse
// @Security BearerAuth
// @Router /api/messages/outbox [get]
func (h *MessageHandler) Outbox(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)
	resp, err := h.messages.Outbox(userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UnreadCount returns the number of unread inbox messages
// @Summary Unread message count
// @Tags messages
// @Produce json
// @Success 200 {object} UnreadCountResponse
// @Security BearerAuth
// @Router /api/messages/unread-count [get]
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	n, err := h.messages.UnreadCount(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UnreadCountResponse{Count: n})
}

// Send delivers a participant message to the organisers
// @Summary Message the organisers
// @Tags messages
// @Accept json
// @Produce json
// @Param request body service.SendMessageRequest true "Message"
// @Success 201 {object} service.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	msg, err := h.messages.Send(c, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// Broadcast delivers an organiser message to everyone, a team or chosen users
// @Summary Broadcast a message
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.BroadcastRequest true "Message and audience"
// @Success 201 {object} service.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/admin/messages/broadcast [post]
func (h *MessageHandler) Broadcast(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	msg, err := h.messages.Broadcast(c, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// MarkRead marks an inbox message as read
// @Summary Mark message read
// @Tags messages
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "mesaj")
	if !ok {
		return
	}
	if err := h.messages.MarkRead(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete hides a message from the caller's inbox or outbox
// @Summary Delete message
// @Tags messages
// @Param id path string true "Message ID"
// @Param box query string false "Which side to delete from" Enums(inbox, outbox) default(inbox)
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "mesaj")
	if !ok {
		return
	}

	var err error
	switch c.DefaultQuery("box", "inbox") {
	case "inbox":
		err = h.messages.DeleteForRecipient(userID, id)
	case "outbox":
		err = h.messages.DeleteForSender(userID, id)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "box inbox veya outbox olmalı"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// currentUser reads the authenticated user id or answers 401
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return uuid.Nil, false
	}
	return userID, true
}
