package handlers

import (
	"tubescribe/errors"
	"tubescribe/models"
	"tubescribe/services/batch"
	"tubescribe/validation"

	"github.com/gofiber/fiber/v2"
)

type BatchHandler struct {
	service   batch.Service
	validator *validation.Validator
}

func NewBatchHandler(service batch.Service, validator *validation.Validator) *BatchHandler {
	return &BatchHandler{service: service, validator: validator}
}

func (h *BatchHandler) Download(c *fiber.Ctx) error {
	const op = "BatchHandler.Download"

	var req models.DownloadRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidInput(op, err, "Invalid request body")
	}

	if err := h.validator.ValidateVideoIDs(req.IDs); err != nil {
		return err
	}

	result, err := h.service.DownloadAll(c.Context(), req.IDs, req.Query)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}
