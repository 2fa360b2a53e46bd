package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/emeraldsys/acidity-backend/internal/common"
	"github.com/emeraldsys/acidity-backend/internal/server/models"
)

const (
	synFingerprintHeader = "Syn-Fingerprint"
	swFingerprintHeader  = "Sw-Fingerprint"
)

func (s *Server) whitelistAuth(c *fiber.Ctx) error {
	key := c.Query("key")
	hash := c.Query("hash")
	typ := c.Query("type")

	if key == "" || hash == "" || typ == "" {
		return badRequest(c, statusAuthBad, "All or some required parameters are null or empty")
	}

	kind, err := models.ParseFingerprintKind(typ)
	if err != nil {
		return badRequest(c, statusAuthBad, "Type not allowed")
	}

	username, proof, err := s.whitelist.Authenticate(c.Context(), key, hash, kind)
	switch {
	case errors.Is(err, common.ErrKeyInvalid):
		return forbidden(c, "Key is invalid")
	case errors.Is(err, common.ErrRecordMalformed):
		return badRequest(c, statusAuthBad, "User object is invalid")
	case err != nil:
		s.logger.Error(c.Context(), "challenge auth failed", "error", err.Error())
		return internalError(c, statusAuthBad, err)
	}

	return c.JSON(authResponse{Status: statusAuthOK, User: username, Hash: proof})
}

func (s *Server) whitelistUpdate(c *fiber.Ctx) error {
	key := c.Query("key")
	typ := c.Query("type")

	synValue := c.Get(synFingerprintHeader)
	swValue := c.Get(swFingerprintHeader)

	if key == "" || typ == "" || (synValue == "" && swValue == "") {
		return badRequest(c, statusAuthBad, "All or some required parameters are null or empty")
	}

	// the supplied header must match the requested kind
	kind, err := models.ParseFingerprintKind(typ)
	if err != nil {
		return badRequest(c, statusAuthBad, "Fingerprint and type mismatch")
	}

	var value string
	switch {
	case kind == models.FingerprintSyn && synValue != "":
		value = synValue
	case kind == models.FingerprintSw && swValue != "":
		value = swValue
	default:
		return badRequest(c, statusAuthBad, "Fingerprint and type mismatch")
	}

	err = s.whitelist.UpdateFingerprint(c.Context(), key, kind, value)
	switch {
	case errors.Is(err, common.ErrKeyInvalid):
		return forbidden(c, "Key is invalid")
	case err != nil:
		s.logger.Error(c.Context(), "fingerprint update failed", "error", err.Error())
		return internalError(c, statusAuthBad, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
