package handlers

import (
	"net/http"
	"strconv"

	conversationRepo "bookwise/database/repository/conversation"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConversationHandler exposes conversation history endpoints.
type ConversationHandler struct {
	Conversations conversationRepo.ConversationRepository
	Logger        *zap.Logger
}

func NewConversationHandler(conversations conversationRepo.ConversationRepository, logger *zap.Logger) *ConversationHandler {
	return &ConversationHandler{Conversations: conversations, Logger: logger}
}

// List returns recent conversations.
func (h *ConversationHandler) List(c *gin.Context) {
	limit := int64(10)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid limit parameter", raw)
			return
		}
		limit = parsed
	}

	convs, err := h.Conversations.List(c.Request.Context(), limit)
	if err != nil {
		h.Logger.Error("Failed to list conversations", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get conversations", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": convs})
}

// Messages returns the message log for one conversation.
func (h *ConversationHandler) Messages(c *gin.Context) {
	conversationID := c.Param("id")

	msgs, err := h.Conversations.Messages(c.Request.Context(), conversationID)
	if err != nil {
		h.Logger.Error("Failed to get conversation messages",
			zap.String("conversationID", conversationID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get messages", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"conversationId": conversationID,
		"messages":       msgs,
	})
}
