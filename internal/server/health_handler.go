package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	serviceName    = "Life Insurance Support Assistant"
	serviceVersion = "0.1.0"
)

type healthHandler struct {
	engine Engine
}

func NewHealthHandler(engine Engine) Handler {
	return &healthHandler{engine: engine}
}

func (h *healthHandler) Handle(c *fiber.Ctx) error {
	if h.engine == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"detail": "engine not initialized",
		})
	}
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"service":   serviceName,
		"timestamp": time.Now().UTC(),
		"version":   serviceVersion,
	})
}
