package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type deleteSessionHandler struct {
	logger *logrus.Logger
	engine Engine
}

func NewDeleteSessionHandler(logger *logrus.Logger, engine Engine) Handler {
	return &deleteSessionHandler{logger: logger, engine: engine}
}

func (h *deleteSessionHandler) Handle(c *fiber.Ctx) error {
	if h.engine == nil {
		return serviceUnavailable(c)
	}

	sessionID := c.Params("id")
	if err := h.engine.DeleteSession(sessionID); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"detail": "Session not found"})
	}

	h.logger.WithField("session_id", sessionID).Info("session deleted")
	return c.JSON(fiber.Map{"status": "deleted", "session_id": sessionID})
}
