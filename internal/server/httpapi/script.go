package httpapi

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/emeraldsys/acidity-backend/internal/common"
	"github.com/emeraldsys/acidity-backend/internal/server/models"
	"github.com/emeraldsys/acidity-backend/internal/server/services"
)

func (s *Server) scriptLatest(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return badRequest(c, statusAuthBad, "Key is null or empty")
	}

	target := services.Target{Channel: models.ChannelFor(c.QueryBool("isPre"))}
	return s.serveScript(c, key, target)
}

func (s *Server) scriptByVersion(c *fiber.Ctx) error {
	version := c.Params("version")
	key := c.Query("key")
	if version == "" || key == "" {
		return badRequest(c, statusAuthBad, "Version and/or key is null or empty")
	}

	return s.serveScript(c, key, services.Target{Version: version})
}

func (s *Server) serveScript(c *fiber.Ctx, key string, target services.Target) error {
	data, err := s.scripts.Fetch(c.Context(), key, target)
	switch {
	case errors.Is(err, common.ErrKeyInvalid):
		return forbidden(c, "Key is invalid")
	case errors.Is(err, common.ErrScriptNotFound):
		return notFound(c, statusScriptNotFound)
	case err != nil:
		s.logger.Error(c.Context(), "script read failed", "error", err.Error())
		return internalError(c, statusScriptReadErr, err)
	}

	c.Set(fiber.HeaderContentType, scriptContentType)
	return c.Send(data)
}

func (s *Server) scriptHashLatest(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return badRequest(c, statusAuthBad, "Key is null or empty")
	}

	target := services.Target{Channel: models.ChannelFor(c.QueryBool("isPre"))}
	return s.serveScriptHash(c, key, target)
}

func (s *Server) scriptHashByVersion(c *fiber.Ctx) error {
	version := c.Params("version")
	key := c.Query("key")
	if version == "" || key == "" {
		return badRequest(c, statusAuthBad, "Version and/or key is null or empty")
	}

	return s.serveScriptHash(c, key, services.Target{Version: version})
}

func (s *Server) serveScriptHash(c *fiber.Ctx, key string, target services.Target) error {
	hash, err := s.scripts.Hash(c.Context(), key, target)
	switch {
	case errors.Is(err, common.ErrKeyInvalid):
		return forbidden(c, "Key is invalid")
	case errors.Is(err, common.ErrScriptNotFound):
		return notFound(c, statusScriptNotFound)
	case err != nil:
		s.logger.Error(c.Context(), "script hash failed", "error", err.Error())
		return internalError(c, statusScriptReadErr, err)
	}

	return c.JSON(hashResponse{Status: statusOK, Hash: hash})
}

func (s *Server) scriptPublish(c *fiber.Ctx) error {
	// The version string outlives this handler inside the version registry,
	// so it must not alias fiber's reusable request buffer.
	version := utils.CopyString(c.Params("version"))
	key := c.Query("key")
	if version == "" || key == "" {
		return badRequest(c, statusAuthBad, "Version and/or key is null or empty")
	}

	file, ok := singleUploadedFile(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(statusResponse{Status: statusReqBodyBad})
	}

	data, err := readUploadedFile(file)
	if err != nil {
		s.logger.Error(c.Context(), "script upload read failed", "error", err.Error())
		return internalError(c, statusScriptWriteErr, err)
	}

	channel := models.ChannelFor(c.QueryBool("isPre"))
	err = s.scripts.Publish(c.Context(), key, version, channel, data)
	switch {
	case errors.Is(err, common.ErrKeyInvalid):
		return forbidden(c, "Key is invalid")
	case errors.Is(err, common.ErrAdminRequired):
		return forbidden(c, "Missing access")
	case err != nil:
		s.logger.Error(c.Context(), "script publish failed", "error", err.Error())
		return internalError(c, statusScriptWriteErr, err)
	}

	return c.Status(fiber.StatusCreated).JSON(statusResponse{Status: statusCreated})
}

// singleUploadedFile returns the request's uploaded file when the multipart
// body carries exactly one, regardless of its field name.
func singleUploadedFile(c *fiber.Ctx) (*multipart.FileHeader, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, false
	}

	var single *multipart.FileHeader
	count := 0
	for _, headers := range form.File {
		for _, fh := range headers {
			single = fh
			count++
		}
	}

	if count != 1 {
		return nil, false
	}
	return single, true
}

func readUploadedFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
