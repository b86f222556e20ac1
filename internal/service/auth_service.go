package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"atelier/internal/models"
	"atelier/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles sign-up, sign-in and session-token verification.
// A user has at most one live session: sign-in mints a fresh JWT and stores
// it on the user row, which invalidates every token issued before.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

type SignInInput struct {
	Email    string
	Password string
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  7 * 24 * time.Hour,
	}
}

// SignUp registers a new account with a bcrypt-hashed password and an empty
// session token. The email is matched and stored lowercased, the name trimmed.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) error {
	email := strings.ToLower(in.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewConflictError("There is already an user with given email")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hashedPassword),
		Token:    "",
	}
	return s.userRepo.Create(ctx, user)
}

// SignIn verifies the credentials and issues a new session token. A missing
// user and a failed password comparison surface identically so callers can't
// tell which check failed.
func (s *AuthService) SignIn(ctx context.Context, in SignInInput) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(in.Email))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.NewUnauthenticatedError("E-mail or password are incorrect")
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); cmpErr != nil {
		return "", models.NewUnauthenticatedError("E-mail or password are incorrect")
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	// Overwrites the previous token, killing any earlier session.
	if err := s.userRepo.UpdateToken(ctx, user.ID, token); err != nil {
		return "", err
	}

	return token, nil
}

// VerifyToken decodes a presented token to a user id and confirms the user's
// stored current token equals it exactly. Any failure means the request is
// unauthenticated.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, models.NewUnauthenticatedError("You must be signed in to continue")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, models.NewUnauthenticatedError("You must be signed in to continue")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, models.NewUnauthenticatedError("You must be signed in to continue")
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, models.NewUnauthenticatedError("You must be signed in to continue")
	}

	user, err := s.userRepo.GetByID(ctx, uint(userID))
	if err != nil {
		return 0, err
	}
	if user == nil || user.Token != tokenString {
		return 0, models.NewUnauthenticatedError("You must be signed in to continue")
	}

	return user.ID, nil
}

// generateToken creates a signed JWT carrying the user id as subject.
func (s *AuthService) generateToken(userID uint) (string, error) {
	if s.jwtSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": "atelier-api",
		"exp": now.Add(s.tokenTTL).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
