package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aidriven/todo-backend/middleware"
	"github.com/aidriven/todo-backend/store"
)

// UserHandler serves the authenticated user's own profile.
type UserHandler struct {
	users *store.UserStore
}

func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// Me returns the public fields of the authenticated user. The password hash
// never serializes.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.users.ByID(c.UserContext(), middleware.UserID(c))
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(user)
}
