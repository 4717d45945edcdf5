package handlers

import (
	"errors"
	"net/url"

	"campaign-backend/internal/services"
	"campaign-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// urlDecodeParam reads a path parameter that may contain percent-encoded
// characters, such as stored object names.
func urlDecodeParam(c *fiber.Ctx, name string) (string, error) {
	return url.QueryUnescape(c.Params(name))
}

// respondServiceError maps service-level failures onto the response taxonomy:
// validation → 400, not found → 404, duplicate → 400 with the specific
// message, anything else → 500 with a generic message.
func respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, validationErr.Message)
	}
	if errors.Is(err, services.ErrNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Not found")
	}
	if errors.Is(err, services.ErrDuplicate) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, fallback)
}
