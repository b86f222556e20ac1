package server

import (
	"strconv"

	"atelier/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps a service error to its HTTP status. Unknown errors
// (storage failures and the like) fall back to 400, matching the API's
// catch-all behavior.
func statusForError(err error) int {
	appErr, ok := models.AsAppError(err)
	if !ok {
		return fiber.StatusBadRequest
	}
	switch appErr.Code {
	case models.CodeValidation:
		return fiber.StatusUnprocessableEntity
	case models.CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeForbidden:
		return fiber.StatusForbidden
	case models.CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

// respondError writes the error with its mapped status.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}

// parseEntityID reads the :id route parameter. An id that does not parse as
// a positive integer is answered exactly like a lookup miss for that
// resource, so clients see a single 404 shape for every bad id.
func parseEntityID(c *fiber.Ctx, resource string) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewNotFoundError(resource)
	}
	return uint(id), nil
}

// currentUserID returns the authenticated user id stored by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}
