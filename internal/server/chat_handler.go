package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"insurance-agent/internal/usecase"
)

type chatRequest struct {
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response  string         `json:"response"`
	SessionID string         `json:"session_id"`
	Context   map[string]any `json:"context"`
	Timestamp time.Time      `json:"timestamp"`
	QueryType string         `json:"query_type"`
}

type chatHandler struct {
	logger *logrus.Logger
	engine Engine
}

func NewChatHandler(logger *logrus.Logger, engine Engine) Handler {
	return &chatHandler{logger: logger, engine: engine}
}

func (h *chatHandler) Handle(c *fiber.Ctx) error {
	if h.engine == nil {
		return serviceUnavailable(c)
	}

	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": "malformed request body"})
	}
	if strings.TrimSpace(req.UserID) == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": "user_id is required"})
	}

	result, err := h.engine.Dispatch(c.Context(), usecase.DispatchInput{
		UserID:    req.UserID,
		Message:   req.Message,
		SessionID: req.SessionID,
	})
	if err != nil {
		status := statusForError(err)
		if status >= fiber.StatusInternalServerError {
			h.logger.WithError(err).Error("chat dispatch failed")
			return c.Status(status).JSON(fiber.Map{"detail": "Internal server error"})
		}
		return c.Status(status).JSON(fiber.Map{"detail": err.Error()})
	}

	return c.JSON(chatResponse{
		Response:  result.ResponseText,
		SessionID: result.SessionID,
		Context: map[string]any{
			"query_type":       string(result.Topic),
			"message_count":    result.MessageCount,
			"session_duration": result.SessionDurationSeconds,
		},
		Timestamp: time.Now().UTC(),
		QueryType: string(result.Topic),
	})
}
