package handlers

import (
	"tubescribe/errors"
	"tubescribe/models"
	"tubescribe/services/search"
	"tubescribe/validation"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	service   search.Service
	validator *validation.Validator
}

func NewSearchHandler(service search.Service, validator *validation.Validator) *SearchHandler {
	return &SearchHandler{service: service, validator: validator}
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	const op = "SearchHandler.Search"

	var req models.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidInput(op, err, "Invalid request body")
	}

	if err := h.validator.ValidateQuery(req.Query); err != nil {
		return err
	}

	filters := req.Filters()
	if err := h.validator.ValidateFilters(filters); err != nil {
		return err
	}

	videos, nextPageToken, err := h.service.Search(c.Context(), req.Query, filters)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": models.SearchResponse{
			Videos:        videos,
			NextPageToken: nextPageToken,
		},
	})
}
