package server

import (
	"atelier/internal/models"
	"atelier/internal/service"
	"atelier/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type createCardRequest struct {
	Title  string `json:"title"`
	LaneID uint   `json:"lane_id"`
}

type updateCardRequest struct {
	Title string `json:"title"`
}

// CreateCard adds a card to a lane
// @Summary Create a card
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createCardRequest true "Card data"
// @Success 201 {object} models.Card
// @Failure 422 {object} models.AppError
// @Failure 404 {object} models.AppError
// @Failure 403 {object} models.AppError
// @Router /cards [post]
func (s *Server) CreateCard(c *fiber.Ctx) error {
	var req createCardRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateTitle(req.Title); err != nil {
		return respondError(c, err)
	}
	if req.LaneID == 0 {
		return respondError(c, models.NewNotFoundError("lane"))
	}

	card, err := s.cardService.CreateCard(c.UserContext(), service.CreateCardInput{
		UserID: currentUserID(c),
		LaneID: req.LaneID,
		Title:  req.Title,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(card)
}

// UpdateCard retitles a card
// @Summary Rename a card
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Param request body updateCardRequest true "Card data"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.AppError
// @Failure 403 {object} models.AppError
// @Router /cards/{id} [put]
func (s *Server) UpdateCard(c *fiber.Ctx) error {
	id, err := parseEntityID(c, "card")
	if err != nil {
		return respondError(c, err)
	}

	var req updateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateTitle(req.Title); err != nil {
		return respondError(c, err)
	}

	err = s.cardService.UpdateCard(c.UserContext(), service.UpdateCardInput{
		UserID: currentUserID(c),
		CardID: id,
		Title:  req.Title,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Card updated"})
}

// DeleteCard removes a card
// @Summary Delete a card
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.AppError
// @Failure 403 {object} models.AppError
// @Router /cards/{id} [delete]
func (s *Server) DeleteCard(c *fiber.Ctx) error {
	id, err := parseEntityID(c, "card")
	if err != nil {
		return respondError(c, err)
	}

	if err := s.cardService.RemoveCard(c.UserContext(), id, currentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Card deleted"})
}
