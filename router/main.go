package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aidriven/todo-backend/handlers"
)

// SetupRoutes wires the route table. guard runs before every task route and
// /api/users/me; register, login, and logout stay open.
func SetupRoutes(app *fiber.App, authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler, taskHandler *handlers.TaskHandler, guard fiber.Handler) {
	app.Get("/", handlers.HandleRoot)
	app.Get("/health", handlers.HandleHealthCheck)

	api := app.Group("/api")
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)

	api.Get("/users/me", guard, userHandler.Me)

	tasks := api.Group("/tasks", guard)
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/:id", taskHandler.Get)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Patch("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)
	tasks.Post("/:id/complete", taskHandler.ToggleComplete)
}
