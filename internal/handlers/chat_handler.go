package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/models"
	"github.com/sanmarcos/conecta/backend/pkg/gemini"
)

// ChatHandler relays questions to the study assistant
type ChatHandler struct {
	assistant *gemini.Assistant
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(assistant *gemini.Assistant) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// RegisterChatRoutes registers chat routes
func (h *ChatHandler) RegisterChatRoutes(g *echo.Group) {
	g.POST("/chat", h.SendMessage)
}

// SendMessage answers a question. Assistant failures still produce a
// bot message, so this only fails on bad input.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req models.ChatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reply := h.assistant.Reply(c.Request().Context(), strings.TrimSpace(req.Message))

	return c.JSON(http.StatusOK, reply)
}
