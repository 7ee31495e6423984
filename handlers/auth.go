package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aidriven/todo-backend/auth"
	"github.com/aidriven/todo-backend/models"
	"github.com/aidriven/todo-backend/store"
)

// AuthHandler serves registration, login, and logout.
type AuthHandler struct {
	users  *store.UserStore
	tokens *auth.TokenService
}

func NewAuthHandler(users *store.UserStore, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// Register creates a user and responds with a bearer token, so a freshly
// registered client can act without a second login round trip.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return internalError(c, err)
	}

	user, err := h.users.Create(c.UserContext(), req.Email, hash, req.Name)
	if errors.Is(err, store.ErrEmailTaken) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
	}
	if err != nil {
		return internalError(c, err)
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Login verifies credentials and issues a bearer token. Unknown emails and
// wrong passwords get the same answer.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := h.users.ByEmail(c.UserContext(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return invalidCredentials(c)
	}
	if err != nil {
		return internalError(c, err)
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return invalidCredentials(c)
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Logout is a stateless acknowledgement. Tokens stay valid until natural
// expiry; there is no server-side session to invalidate.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Successfully logged out"})
}

func invalidCredentials(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Incorrect username or password"})
}
