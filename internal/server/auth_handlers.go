package server

import (
	"atelier/internal/models"
	"atelier/internal/service"
	"atelier/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type signUpRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token string `json:"token"`
}

// SignUp handles user registration
// @Summary Register a new user
// @Description Creates an account. Emails are unique case-insensitively.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body signUpRequest true "Registration data"
// @Success 201 {object} map[string]string
// @Failure 422 {object} models.AppError
// @Failure 409 {object} models.AppError
// @Router /sign-up [post]
func (s *Server) SignUp(c *fiber.Ctx) error {
	var req signUpRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateName(req.Name); err != nil {
		return respondError(c, err)
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return respondError(c, err)
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return respondError(c, err)
	}
	if req.ConfirmPassword != req.Password {
		return respondError(c, models.NewValidationError("Passwords do not match"))
	}

	err := s.authService.SignUp(c.UserContext(), service.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created",
	})
}

// SignIn handles user authentication
// @Summary Sign in
// @Description Verifies credentials and issues the user's session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body signInRequest true "Credentials"
// @Success 200 {object} signInResponse
// @Failure 422 {object} models.AppError
// @Failure 401 {object} models.AppError
// @Router /sign-in [post]
func (s *Server) SignIn(c *fiber.Ctx) error {
	var req signInRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		return respondError(c, err)
	}
	if req.Password == "" {
		return respondError(c, models.NewValidationError("Password is required"))
	}

	token, err := s.authService.SignIn(c.UserContext(), service.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(signInResponse{Token: token})
}
