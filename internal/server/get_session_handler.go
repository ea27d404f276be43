package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type sessionSummaryResponse struct {
	SessionID      string    `json:"session_id"`
	UserID         string    `json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
	LastActive     time.Time `json:"last_active"`
	MessageCount   int       `json:"message_count"`
	ContextSummary string    `json:"context_summary"`
}

type getSessionHandler struct {
	logger *logrus.Logger
	engine Engine
}

func NewGetSessionHandler(logger *logrus.Logger, engine Engine) Handler {
	return &getSessionHandler{logger: logger, engine: engine}
}

func (h *getSessionHandler) Handle(c *fiber.Ctx) error {
	if h.engine == nil {
		return serviceUnavailable(c)
	}

	summary, err := h.engine.SessionInfo(c.Params("id"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"detail": "Session not found"})
	}

	return c.JSON(sessionSummaryResponse{
		SessionID:      summary.SessionID,
		UserID:         summary.UserID,
		CreatedAt:      summary.CreatedAt,
		LastActive:     summary.LastActiveAt,
		MessageCount:   summary.MessageCount,
		ContextSummary: summary.ContextSummary,
	})
}
