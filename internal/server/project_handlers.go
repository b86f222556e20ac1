package server

import (
	"atelier/internal/models"
	"atelier/internal/service"
	"atelier/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type projectRequest struct {
	Name string `json:"name"`
}

// GetProjects lists the authenticated user's projects
// @Summary List projects
// @Description Returns the caller's projects, newest first, with status preloaded.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Project
// @Failure 401 {object} models.AppError
// @Router /projects [get]
func (s *Server) GetProjects(c *fiber.Ctx) error {
	projects, err := s.projectService.FindAll(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(projects)
}

// CreateProject creates a project with its moodboard
// @Summary Create a project
// @Description Creates a project in the Planning status and its empty moodboard.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body projectRequest true "Project data"
// @Success 201 {object} models.Project
// @Failure 422 {object} models.AppError
// @Failure 409 {object} models.AppError
// @Router /projects [post]
func (s *Server) CreateProject(c *fiber.Ctx) error {
	var req projectRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateName(req.Name); err != nil {
		return respondError(c, err)
	}

	project, err := s.projectService.CreateProject(c.UserContext(), service.CreateProjectInput{
		UserID: currentUserID(c),
		Name:   req.Name,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject renames a project
// @Summary Rename a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body projectRequest true "Project data"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.AppError
// @Failure 403 {object} models.AppError
// @Failure 409 {object} models.AppError
// @Router /projects/{id} [put]
func (s *Server) UpdateProject(c *fiber.Ctx) error {
	id, err := parseEntityID(c, "project")
	if err != nil {
		return respondError(c, err)
	}

	var req projectRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateName(req.Name); err != nil {
		return respondError(c, err)
	}

	err = s.projectService.UpdateProject(c.UserContext(), service.UpdateProjectInput{
		UserID:    currentUserID(c),
		ProjectID: id,
		Name:      req.Name,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Project updated"})
}

// DeleteProject removes a project and everything under it
// @Summary Delete a project
// @Description Deletes the project, its lanes and cards, its moodboard and images.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.AppError
// @Failure 403 {object} models.AppError
// @Router /projects/{id} [delete]
func (s *Server) DeleteProject(c *fiber.Ctx) error {
	id, err := parseEntityID(c, "project")
	if err != nil {
		return respondError(c, err)
	}

	if err := s.projectService.RemoveProject(c.UserContext(), id, currentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Project deleted"})
}

// GetProjectLanes lists a project's lanes with their cards
// @Summary List lanes of a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {array} models.Lane
// @Failure 404 {object} models.AppError
// @Failure 403 {object} models.AppError
// @Router /projects/{id}/lanes [get]
func (s *Server) GetProjectLanes(c *fiber.Ctx) error {
	id, err := parseEntityID(c, "project")
	if err != nil {
		return respondError(c, err)
	}

	lanes, err := s.laneService.FindAll(c.UserContext(), id, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(lanes)
}

// GetProjectMoodboard returns a project's moodboard with its images
// @Summary Get the moodboard of a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} service.MoodboardView
// @Failure 404 {object} models.AppError
// @Failure 403 {object} models.AppError
// @Router /projects/{id}/moodboard [get]
func (s *Server) GetProjectMoodboard(c *fiber.Ctx) error {
	id, err := parseEntityID(c, "project")
	if err != nil {
		return respondError(c, err)
	}

	view, err := s.projectService.FindMoodboard(c.UserContext(), id, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}
