package server

import (
	"atelier/internal/models"
	"atelier/internal/service"
	"atelier/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type createImageRequest struct {
	URL         string `json:"url"`
	MoodboardID uint   `json:"moodboard_id"`
}

// CreateImage adds an image to a moodboard
// @Summary Add an image to a moodboard
// @Description Creates an image record at the default placement (origin, zero size).
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createImageRequest true "Image data"
// @Success 201 {object} models.Image
// @Failure 422 {object} models.AppError
// @Failure 404 {object} models.AppError
// @Failure 403 {object} models.AppError
// @Router /images [post]
func (s *Server) CreateImage(c *fiber.Ctx) error {
	var req createImageRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateURL(req.URL); err != nil {
		return respondError(c, err)
	}
	if req.MoodboardID == 0 {
		return respondError(c, models.NewNotFoundError("moodboard"))
	}

	image, err := s.imageService.CreateImage(c.UserContext(), service.CreateImageInput{
		UserID:      currentUserID(c),
		MoodboardID: req.MoodboardID,
		URL:         req.URL,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(image)
}

// DeleteImage removes an image from its moodboard
// @Summary Delete an image
// @Tags images
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.AppError
// @Failure 403 {object} models.AppError
// @Router /images/{id} [delete]
func (s *Server) DeleteImage(c *fiber.Ctx) error {
	id, err := parseEntityID(c, "image")
	if err != nil {
		return respondError(c, err)
	}

	if err := s.imageService.RemoveImage(c.UserContext(), id, currentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Image deleted"})
}
