package handlers

import (
	"errors"

	"github.com/leanttro/feiras-de-rua/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Ask the market assistant
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Message and optional session id"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.chatService.Chat(c.Context(), req.SessionID, req.Message)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Mensagem não pode ser vazia",
			})
		case errors.Is(err, service.ErrChatBlocked):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Chat indisponível no momento",
				"reply": service.SafetyFallbackReply,
			})
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Chat indisponível no momento",
			})
		}
	}

	return c.JSON(ChatResponse{
		Reply:     resp.Reply,
		SessionID: resp.SessionID,
	})
}
