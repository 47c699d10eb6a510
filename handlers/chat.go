package handlers

import (
	"net/http"

	conversationRepo "bookwise/database/repository/conversation"
	"bookwise/models"
	"bookwise/services/agent"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational booking endpoint.
type ChatHandler struct {
	Agent         agent.Service
	Conversations conversationRepo.ConversationRepository
	Logger        *zap.Logger
}

func NewChatHandler(agentSvc agent.Service, conversations conversationRepo.ConversationRepository, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Agent: agentSvc, Conversations: conversations, Logger: logger}
}

// Chat handles one conversation turn: persist the user message, run the
// dialog agent, mirror the new state, persist the assistant reply.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	ctx := c.Request.Context()

	conversationID := req.ConversationID
	if conversationID == "" {
		conv, err := h.Conversations.Create(ctx)
		if err != nil {
			h.Logger.Error("Failed to create conversation", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to start conversation", "")
			return
		}
		conversationID = conv.ID
	} else {
		conv, err := h.Conversations.GetByID(ctx, conversationID)
		if err != nil {
			h.Logger.Error("Failed to load conversation", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load conversation", "")
			return
		}
		if conv == nil {
			fresh, err := h.Conversations.Create(ctx)
			if err != nil {
				h.Logger.Error("Failed to create conversation", zap.Error(err))
				utils.JSONError(c, http.StatusInternalServerError, "Failed to start conversation", "")
				return
			}
			conversationID = fresh.ID
		}
	}

	if _, err := h.Conversations.AddMessage(ctx, conversationID, "user", req.Message); err != nil {
		h.Logger.Warn("Failed to record user message",
			zap.String("conversationID", conversationID), zap.Error(err))
	}

	reply, state := h.Agent.ProcessTurn(ctx, conversationID, req.Message)

	if err := h.Conversations.UpdateState(ctx, conversationID, *state); err != nil {
		h.Logger.Warn("Failed to mirror conversation state",
			zap.String("conversationID", conversationID), zap.Error(err))
	}
	if _, err := h.Conversations.AddMessage(ctx, conversationID, "assistant", reply); err != nil {
		h.Logger.Warn("Failed to record assistant message",
			zap.String("conversationID", conversationID), zap.Error(err))
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Response:       reply,
		ConversationID: conversationID,
	})
}
