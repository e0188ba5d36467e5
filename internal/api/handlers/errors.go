package handlers

import (
	"Recipe-Share/domain"
	"Recipe-Share/internal/api/presenters"
	"Recipe-Share/internal/utils/storage"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrRecipeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedRecipeAccess):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, storage.ErrFileTypeNotAllowed):
		return fiber.StatusUnsupportedMediaType
	case errors.Is(err, storage.ErrStorageNotConfigured):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// errorResponse writes err with the status of its kind. Store failures are
// logged and reported without their cause.
func errorResponse(c *fiber.Ctx, message string, err error) error {
	code := statusFor(err)
	if code == fiber.StatusInternalServerError {
		log.Errorw(message, "path", c.Path(), "error", err)
		if errors.Is(err, domain.ErrPersistence) {
			err = domain.ErrPersistence
		}
	}
	return presenters.ErrorResponse(c, code, message, err)
}
