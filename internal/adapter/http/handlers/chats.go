package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workstream/internal/adapter/http/dto"
	"workstream/internal/adapter/http/mapper"
	"workstream/internal/adapter/http/middleware"
	"workstream/internal/core/ports"
	"workstream/pkg/apierrors"
)

// ChatHandler serves the group chat routes and, through the email path
// parameter, the direct chat routes. Group routes carry no email, which
// selects domain.GroupChat.
type ChatHandler struct {
	chatService ports.ChatService
}

func NewChatHandler(chatService ports.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) ListChats(c *gin.Context) {
	teamID := c.Param("teamID")

	chats, err := h.chatService.ListChats(c.Request.Context(), middleware.GetUserEmail(c), teamID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListChats, "failed to list chats", zap.String("team_id", teamID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToChatList(chats))
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	teamID, peer := c.Param("teamID"), c.Param("email")

	messages, err := h.chatService.ListMessages(c.Request.Context(), middleware.GetUserEmail(c), teamID, peer)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListMessages, "failed to list chat messages", zap.String("team_id", teamID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToMessageItems(messages))
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidMessagePayload)
		return
	}

	teamID, peer := c.Param("teamID"), c.Param("email")
	message, err := h.chatService.SendMessage(c.Request.Context(), middleware.GetUserEmail(c), teamID, peer, req.Body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailSendMessage, "failed to send chat message", zap.String("team_id", teamID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToMessageItem(message))
}

func (h *ChatHandler) MarkSeen(c *gin.Context) {
	teamID, peer := c.Param("teamID"), c.Param("email")

	if err := h.chatService.MarkSeen(c.Request.Context(), middleware.GetUserEmail(c), teamID, peer); err != nil {
		respondError(c, err, apierrors.MsgFailMarkSeen, "failed to mark chat as seen", zap.String("team_id", teamID))
		return
	}

	c.Status(http.StatusNoContent)
}
