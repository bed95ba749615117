package handlers

import (
	"tubescribe/errors"
	"tubescribe/models"
	"tubescribe/services/credential"

	"github.com/gofiber/fiber/v2"
)

type KeyHandler struct {
	creds *credential.Service
}

func NewKeyHandler(creds *credential.Service) *KeyHandler {
	return &KeyHandler{creds: creds}
}

// Status reports whether a key is configured without revealing it.
func (h *KeyHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    models.KeyResponse{Configured: h.creds.Configured(c.Context())},
	})
}

func (h *KeyHandler) Set(c *fiber.Ctx) error {
	const op = "KeyHandler.Set"

	var req models.KeyRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidInput(op, err, "Invalid request body")
	}

	if err := h.creds.SetKey(c.Context(), req.Key); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    models.KeyResponse{Configured: true},
	})
}
