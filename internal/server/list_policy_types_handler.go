package server

import "github.com/gofiber/fiber/v2"

type listPolicyTypesHandler struct {
	engine Engine
}

func NewListPolicyTypesHandler(engine Engine) Handler {
	return &listPolicyTypesHandler{engine: engine}
}

func (h *listPolicyTypesHandler) Handle(c *fiber.Ctx) error {
	if h.engine == nil {
		return serviceUnavailable(c)
	}
	return c.JSON(fiber.Map{"policy_types": h.engine.PolicyTypes()})
}
