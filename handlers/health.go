package handlers

import "github.com/gofiber/fiber/v2"

// HandleRoot greets unauthenticated visitors.
func HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Welcome to the AI-Driven Todo App Backend!"})
}

// HandleHealthCheck reports liveness.
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
