package handlers

import (
	"errors"

	"banter/server/internal/service"

	"github.com/gofiber/fiber/v2"
)

// fail translates a service error kind into its status code.
func fail(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		code = fiber.StatusBadRequest
	case errors.Is(err, service.ErrForbidden):
		code = fiber.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, service.ErrDuplicate), errors.Is(err, service.ErrConflict):
		code = fiber.StatusConflict
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
