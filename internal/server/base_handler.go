package server

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"insurance-agent/internal/usecase"
)

// Handler is the common shape of all HTTP handlers.
type Handler interface {
	Handle(c *fiber.Ctx) error
}

// Engine is the dispatch surface consumed by the HTTP handlers.
type Engine interface {
	Dispatch(ctx context.Context, in usecase.DispatchInput) (usecase.DispatchResult, error)
	SessionInfo(id string) (usecase.SessionSummary, error)
	DeleteSession(id string) error
	PolicyTypes() []string
}

func statusForError(err error) int {
	var ucErr *usecase.Error
	if errors.As(err, &ucErr) {
		switch ucErr.Code {
		case usecase.ErrorInvalidInput:
			return fiber.StatusUnprocessableEntity
		case usecase.ErrorNotFound:
			return fiber.StatusNotFound
		}
	}
	return fiber.StatusInternalServerError
}

func serviceUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"detail": "Service unavailable"})
}
