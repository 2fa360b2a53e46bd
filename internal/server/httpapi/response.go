package httpapi

import "github.com/gofiber/fiber/v2"

// Status tokens are part of the wire protocol; clients switch on them.
const (
	statusOK             = "OK"
	statusAuthOK         = "AUTH_OK"
	statusAuthBad        = "AUTH_BAD"
	statusAuthForbidden  = "AUTH_FORBIDDEN"
	statusCreated        = "CREATED"
	statusReqBodyBad     = "REQ_BODY_BAD"
	statusScriptNotFound = "SCRIPT_NOT_FOUND"
	statusScriptReadErr  = "SCRIPT_READ_ERR"
	statusScriptWriteErr = "SCRIPT_WRITE_ERR"
)

// scriptContentType is what deployed script clients expect on script bodies.
const scriptContentType = "text/x-lua; charset=UTF-8"

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type authResponse struct {
	Status string `json:"status"`
	User   string `json:"user"`
	Hash   string `json:"hash"`
}

type hashResponse struct {
	Status string `json:"status"`
	Hash   string `json:"hash"`
}

func badRequest(c *fiber.Ctx, status, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(statusResponse{Status: status, Message: message})
}

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(statusResponse{Status: statusAuthForbidden, Message: message})
}

func notFound(c *fiber.Ctx, status string) error {
	return c.Status(fiber.StatusNotFound).JSON(statusResponse{Status: status})
}

func internalError(c *fiber.Ctx, status string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(statusResponse{Status: status, Message: err.Error()})
}
