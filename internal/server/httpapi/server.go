// Package httpapi exposes the whitelist and script distribution service
// over HTTP. Routes, payload shapes and status tokens are the protocol
// contract existing clients depend on.
package httpapi

import (
	"context"

	"github.com/gofiber/fiber/v2"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/emeraldsys/acidity-backend/internal/logging"
	"github.com/emeraldsys/acidity-backend/internal/server/services"
)

type Server struct {
	address   string
	app       *fiber.App
	logger    logging.Logger
	whitelist *services.WhitelistService
	scripts   *services.ScriptService
}

func NewServer(address string, l logging.Logger, ws *services.WhitelistService, ss *services.ScriptService) *Server {
	s := &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		whitelist: ws,
		scripts:   ss,
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recoverer.New())
	app.Use(requestID())
	app.Use(s.requestLogger())

	v1 := app.Group("/v1/auth")
	v1.Get("/", s.health)
	v1.Get("/whitelist", s.whitelistAuth)
	v1.Patch("/whitelist", s.whitelistUpdate)
	v1.Get("/whitelist/script", s.scriptLatest)
	v1.Get("/whitelist/script/:version", s.scriptByVersion)
	v1.Patch("/whitelist/script/:version", s.scriptPublish)
	v1.Get("/whitelist/scriptHash", s.scriptHashLatest)
	v1.Get("/whitelist/scriptHash/:version", s.scriptHashByVersion)

	s.app = app
	return s
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = s.app.Shutdown()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.app.Listen(s.address); err != nil {
		return err
	}

	return nil
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(statusResponse{Status: statusOK})
}
