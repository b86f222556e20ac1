package server

import (
	"atelier/internal/models"
	"atelier/internal/service"
	"atelier/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type createLaneRequest struct {
	Title     string `json:"title"`
	ProjectID uint   `json:"project_id"`
}

type updateLaneRequest struct {
	Title string `json:"title"`
}

// CreateLane adds a lane to a project
// @Summary Create a lane
// @Description Creates a lane in the given project. Titles are unique per project, case-insensitively.
// @Tags lanes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createLaneRequest true "Lane data"
// @Success 201 {object} models.Lane
// @Failure 422 {object} models.AppError
// @Failure 404 {object} models.AppError
// @Failure 403 {object} models.AppError
// @Failure 409 {object} models.AppError
// @Router /lanes [post]
func (s *Server) CreateLane(c *fiber.Ctx) error {
	var req createLaneRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateTitle(req.Title); err != nil {
		return respondError(c, err)
	}
	if req.ProjectID == 0 {
		return respondError(c, models.NewNotFoundError("project"))
	}

	lane, err := s.laneService.CreateLane(c.UserContext(), service.CreateLaneInput{
		UserID:    currentUserID(c),
		ProjectID: req.ProjectID,
		Title:     req.Title,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(lane)
}

// UpdateLane retitles a lane
// @Summary Rename a lane
// @Tags lanes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lane ID"
// @Param request body updateLaneRequest true "Lane data"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.AppError
// @Failure 403 {object} models.AppError
// @Failure 409 {object} models.AppError
// @Router /lanes/{id} [put]
func (s *Server) UpdateLane(c *fiber.Ctx) error {
	id, err := parseEntityID(c, "lane")
	if err != nil {
		return respondError(c, err)
	}

	var req updateLaneRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateTitle(req.Title); err != nil {
		return respondError(c, err)
	}

	err = s.laneService.UpdateLane(c.UserContext(), service.UpdateLaneInput{
		UserID: currentUserID(c),
		LaneID: id,
		Title:  req.Title,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Lane updated"})
}

// DeleteLane removes a lane and its cards
// @Summary Delete a lane
// @Tags lanes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lane ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.AppError
// @Failure 403 {object} models.AppError
// @Router /lanes/{id} [delete]
func (s *Server) DeleteLane(c *fiber.Ctx) error {
	id, err := parseEntityID(c, "lane")
	if err != nil {
		return respondError(c, err)
	}

	if err := s.laneService.RemoveLane(c.UserContext(), id, currentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Lane deleted"})
}
