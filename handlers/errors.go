package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// internalError hides the failure detail from the client; it is logged
// server-side only.
func internalError(c *fiber.Ctx, err error) error {
	log.Printf("ERROR: %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

func taskNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
}
