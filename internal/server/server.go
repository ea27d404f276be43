// Package server exposes the assistant over HTTP using fiber.
package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

// Server binds the HTTP routes to a dispatch engine.
type Server struct {
	app    *fiber.App
	logger *logrus.Logger
	host   string
	port   int
}

// New builds the fiber app and registers all routes.
func New(logger *logrus.Logger, engine Engine, host string, port int) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           60 * time.Second,
		WriteTimeout:          60 * time.Second,
		IdleTimeout:           120 * time.Second,
	})
	app.Use(recover.New())

	registerRoutes(app, logger, engine)

	return &Server{app: app, logger: logger, host: host, port: port}
}

func registerRoutes(app *fiber.App, logger *logrus.Logger, engine Engine) {
	app.Post("/chat", NewChatHandler(logger, engine).Handle)
	app.Get("/health", NewHealthHandler(engine).Handle)
	app.Get("/sessions/:id", NewGetSessionHandler(logger, engine).Handle)
	app.Delete("/sessions/:id", NewDeleteSessionHandler(logger, engine).Handle)
	app.Get("/knowledge/types", NewListPolicyTypesHandler(engine).Handle)
}

// Run blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	s.logger.WithField("addr", addr).Info("http server listening")
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
