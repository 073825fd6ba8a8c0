package handler

import (
	"net/http"

	"propertyhub/internal/model"
	"propertyhub/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles property chat requests
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chat: chat,
	}
}

// Ask handles POST /api/v1/properties/:slug/chat
func (h *ChatHandler) Ask(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBind(&req); err != nil {
		// An unreadable body counts as an empty message; the slug is still checked first.
		req.Message = ""
	}

	reply, err := h.chat.Ask(c.Request.Context(), c.Param("slug"), req.Message)
	if err != nil {
		respondError(c, err, "answer chat message")
		return
	}

	c.JSON(http.StatusOK, model.ChatResponse{Reply: reply})
}
